package order

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a freight order in the system. It is the aggregate root that
// manages the order lifecycle from creation through resource assignment to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, requester, source and destination
//   - Must have a valid time window (start strictly before end)
//   - Freight weight must not be negative
//   - Assignment is all-or-nothing: a non-Created order carries vehicle,
//     container, route, departure time and ETA together
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// requester identifies the party that placed the order
	requester string

	// source and destination identify the parties between which freight moves
	source      string
	destination string

	// window is the interval within which pickup/delivery must occur;
	// its end is the binding deadline
	window kernel.TimeWindow

	// vehicleID, containerID and routeID are the bound resources (nil until scheduled)
	vehicleID   *kernel.UUID
	containerID *kernel.UUID
	routeID     *kernel.UUID

	// departureTime and eta are committed on scheduling (zero until then)
	departureTime time.Time
	eta           time.Time

	// status represents the current state in the order lifecycle
	status Status

	// operationType is Loading or Unloading
	operationType OperationType

	// preferredShared marks the requester's willingness to consolidate
	preferredShared bool

	// shared is set once the order actually shares a vehicle/container/route
	shared bool

	// freightWeight is the shipment weight in mass units (non-negative)
	freightWeight float64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - requester: party placing the order (required)
//   - source, destination: parties between which freight moves (required)
//   - window: validated pickup/delivery time window
//   - operationType: Loading or Unloading
//   - preferredShared: whether the order may be consolidated
//   - freightWeight: shipment weight, must not be negative
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	requester string,
	source string,
	destination string,
	window kernel.TimeWindow,
	operationType OperationType,
	preferredShared bool,
	freightWeight float64,
) (*Order, error) {
	order := &Order{
		status:          Created,
		preferredShared: preferredShared,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRequester(requester),
		order.setSource(source),
		order.setDestination(destination),
		order.setWindow(window),
		order.setOperationType(operationType),
		order.setFreightWeight(freightWeight),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, validating the
// cross-field assignment invariant. All assignment fields must be present
// together for a non-Created order and absent for a Created one.
func RestoreOrder(
	id kernel.UUID,
	requester string,
	source string,
	destination string,
	window kernel.TimeWindow,
	status Status,
	operationType OperationType,
	preferredShared bool,
	shared bool,
	freightWeight float64,
	vehicleID *kernel.UUID,
	containerID *kernel.UUID,
	routeID *kernel.UUID,
	departureTime time.Time,
	eta time.Time,
) (*Order, error) {
	order := &Order{
		preferredShared: preferredShared,
		shared:          shared,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRequester(requester),
		order.setSource(source),
		order.setDestination(destination),
		order.setWindow(window),
		order.setOperationType(operationType),
		order.setFreightWeight(freightWeight),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	assigned := vehicleID != nil && containerID != nil && routeID != nil &&
		!departureTime.IsZero() && !eta.IsZero()
	partial := !assigned && (vehicleID != nil || containerID != nil || routeID != nil ||
		!departureTime.IsZero() || !eta.IsZero())
	if partial {
		return nil, errs.NewValueIsInvalidErrorWithCause("order assignment",
			errors.New("vehicle, container, route, departure time and eta must be set together"))
	}
	if err := status.ValidateCanHaveAssignment(assigned); err != nil {
		return nil, err
	}

	if assigned {
		order.vehicleID = vehicleID
		order.containerID = containerID
		order.routeID = routeID
		order.departureTime = departureTime
		order.eta = eta
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Requester returns the party that placed the order.
func (o *Order) Requester() string {
	return o.requester
}

// Source returns the party freight moves from.
func (o *Order) Source() string {
	return o.source
}

// Destination returns the party freight moves to.
func (o *Order) Destination() string {
	return o.destination
}

// Window returns the order's pickup/delivery time window.
func (o *Order) Window() kernel.TimeWindow {
	return o.window
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OperationType returns whether the order loads or unloads freight.
func (o *Order) OperationType() OperationType {
	return o.operationType
}

// PreferredShared reports whether the requester allows consolidation.
func (o *Order) PreferredShared() bool {
	return o.preferredShared
}

// IsShared reports whether the order shares its vehicle/container/route.
func (o *Order) IsShared() bool {
	return o.shared
}

// FreightWeight returns the shipment weight in mass units.
func (o *Order) FreightWeight() float64 {
	return o.freightWeight
}

// Vehicle returns the bound vehicle's ID, or nil if unassigned.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// Container returns the bound container's ID, or nil if unassigned.
func (o *Order) Container() *kernel.UUID {
	return o.containerID
}

// Route returns the bound route's ID, or nil if unassigned.
func (o *Order) Route() *kernel.UUID {
	return o.routeID
}

// DepartureTime returns the committed departure time (zero until scheduled).
func (o *Order) DepartureTime() time.Time {
	return o.departureTime
}

// ETA returns the committed arrival deadline (zero until scheduled).
func (o *Order) ETA() time.Time {
	return o.eta
}

// AssignResources binds the order to a vehicle, container and route and commits
// its departure time and ETA, transitioning the order to Scheduled.
//
// Assignment is all-or-nothing: every parameter must be valid, and the order
// must be in Created status. A Scheduled order cannot be scheduled again; the
// orchestrator treats that case as a no-op before calling this method.
func (o *Order) AssignResources(
	vehicleID kernel.UUID,
	containerID kernel.UUID,
	routeID kernel.UUID,
	departureTime time.Time,
	eta time.Time,
) error {
	if err := errors.Join(
		vehicleID.Validate(),
		containerID.Validate(),
		routeID.Validate(),
	); err != nil {
		return err
	}
	if departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	if eta.IsZero() {
		return errs.NewValueIsRequiredError("eta")
	}
	if eta.Before(departureTime) {
		return errs.NewValueIsInvalidErrorWithCause("eta",
			fmt.Errorf("eta %s is before departure time %s", eta, departureTime))
	}

	newStatus, err := o.status.Schedule()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = &vehicleID
	o.containerID = &containerID
	o.routeID = &routeID
	o.departureTime = departureTime
	o.eta = eta
	return nil
}

// MarkShared flags the order as sharing its vehicle/container/route with
// another order. Valid while the order is still active (Created or Scheduled).
func (o *Order) MarkShared() error {
	if !o.status.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark shared", o.status.String()),
		)
	}

	o.shared = true
	return nil
}

// Start marks the order's transport as departed (Scheduled -> Undergoing).
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finish marks the order as delivered (Undergoing -> Completed).
func (o *Order) Finish() error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order (Created or Scheduled -> Canceled).
// Bound resources are released separately by the lifecycle driver or the
// cancellation command; the order keeps its assignment fields for auditability.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRequester validates and sets the requesting party.
func (o *Order) setRequester(requester string) error {
	if requester == "" {
		return errs.NewValueIsRequiredError("requester")
	}
	o.requester = requester
	return nil
}

// setSource validates and sets the source party.
func (o *Order) setSource(source string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}
	o.source = source
	return nil
}

// setDestination validates and sets the destination party.
func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

// setWindow validates and sets the order's time window.
func (o *Order) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.window = window
	return nil
}

// setOperationType validates and sets the operation type.
func (o *Order) setOperationType(operationType OperationType) error {
	if err := operationType.Validate(); err != nil {
		return err
	}
	o.operationType = operationType
	return nil
}

// setFreightWeight validates and sets the freight weight.
// Weight must not be negative.
func (o *Order) setFreightWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("freightWeight",
			fmt.Errorf("%v is negative", weight))
	}
	o.freightWeight = weight
	return nil
}
