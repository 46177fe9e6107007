package commands

import (
	"errors"
	"math"

	"robodelivery/internal/pkg/errs"
	"robodelivery/internal/pkg/guard"
)

var (
	ErrRequestPlanCommandIsNotConstructed = errors.New(
		"RequestPlanCommand must be created via NewRequestPlanCommand constructor",
	)
)

// RequestPlanCommand represents a robot's request for a delivery plan:
// the value-maximizing set of eligible orders fitting its carrying
// capacity.
//
// Example:
//
//	cmd, err := NewRequestPlanCommand("robot-001", 70)
//	if err != nil {
//	    return fmt.Errorf("invalid plan request: %w", err)
//	}
//	plan, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("planning failed: %w", err)
//	}
//	// plan.Orders holds exactly the orders committed out for delivery
type RequestPlanCommand struct { //nolint:recvcheck //using for validation
	robotID  string
	capacity int

	guard guard.ConstructorGuard
}

// NewRequestPlanCommand creates a command to compute and commit a delivery
// plan. The robot ID must be non-empty and the capacity non-negative; a
// negative capacity is rejected here, before any store access. A zero
// capacity is valid and yields an empty plan.
func NewRequestPlanCommand(robotID string, capacity int) (RequestPlanCommand, error) {
	cmd := RequestPlanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRobotID(robotID),
		cmd.setCapacity(capacity),
	); err != nil {
		return RequestPlanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPlanCommand) Validate() error {
	return c.guard.Validate(ErrRequestPlanCommandIsNotConstructed)
}

// RobotID returns the identifier of the requesting robot.
func (c RequestPlanCommand) RobotID() string {
	return c.robotID
}

// Capacity returns the robot's carrying capacity for this trip.
func (c RequestPlanCommand) Capacity() int {
	return c.capacity
}

func (c *RequestPlanCommand) setRobotID(robotID string) error {
	if robotID == "" {
		return errs.NewValueIsRequiredError("robotID")
	}

	c.robotID = robotID
	return nil
}

func (c *RequestPlanCommand) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 0, math.MaxInt)
	}

	c.capacity = capacity
	return nil
}
