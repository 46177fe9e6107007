// Package product implements the product aggregate, the catalog entry an
// order refers to. A product's unit price and unit weight are the source of
// an order's value and weight dimensions used by the delivery planner.
package product
