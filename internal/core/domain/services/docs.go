// Package services contains stateless domain services operating on the
// domain model. The central one is DeliveryPlanner, the pure selection
// algorithm that picks the value-maximizing set of orders fitting a robot's
// carrying capacity.
package services
