// Package order implements the order aggregate and its lifecycle state
// machine.
//
// An order is created by the storefront in AwaitingShipment status, picked
// up by a delivery plan (Dispatch, moving it to OutForDelivery) and finally
// completed by the robot (Complete, moving it to Delivered). Transitions
// only ever move forward; there is no reverse edge and no skipped state.
// The arrival timestamp is stamped exactly once, at the delivered
// transition.
package order
