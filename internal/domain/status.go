package domain

import "slices"

// Status is the lifecycle value of a document.
type Status string

const (
	StatusCreated     Status = "created"
	StatusPending     Status = "pending"
	StatusInTransit   Status = "in_transit"
	StatusDelivered   Status = "delivered"
	StatusDraft       Status = "draft"
	StatusIssued      Status = "issued"
	StatusOverdue     Status = "overdue"
	StatusPaid        Status = "paid"
	StatusPartial     Status = "partial"
	StatusUnpaid      Status = "unpaid"
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
	StatusSuspended   Status = "suspended"
)

// StatusAll is the list filter value that disables status filtering.
const StatusAll = "all"

type lifecycleKind int

const (
	lifecycleFree lifecycleKind = iota
	lifecycleOrdered
	lifecycleDerived
)

// CanTransition reports whether target sits strictly later than current in progression.
// Statuses absent from progression have index -1, so they can move into the sequence
// but can never be targeted.
func CanTransition(current, target Status, progression []Status) bool {
	return slices.Index(progression, target) > slices.Index(progression, current)
}

// Lifecycle is the status machine of one document kind.
//
// Ordered lifecycles only move forward along their progression. Free lifecycles
// accept any member of the enum. Derived lifecycles are computed from other fields
// and never accept a caller-supplied status.
type Lifecycle struct {
	name     string
	kind     lifecycleKind
	statuses []Status
	sequence []Status
}

// OrderedLifecycle builds a forward-only lifecycle. Alternates are valid enum members
// outside the progression.
func OrderedLifecycle(name string, sequence []Status, alternates ...Status) Lifecycle {
	return Lifecycle{
		name:     name,
		kind:     lifecycleOrdered,
		statuses: append(slices.Clone(sequence), alternates...),
		sequence: slices.Clone(sequence),
	}
}

func FreeLifecycle(name string, statuses ...Status) Lifecycle {
	return Lifecycle{name: name, kind: lifecycleFree, statuses: slices.Clone(statuses)}
}

func DerivedLifecycle(name string, statuses ...Status) Lifecycle {
	return Lifecycle{name: name, kind: lifecycleDerived, statuses: slices.Clone(statuses)}
}

var (
	LorryReceiptLifecycle = OrderedLifecycle("lr",
		[]Status{StatusCreated, StatusInTransit, StatusDelivered}, StatusPending)
	ChallanLifecycle = OrderedLifecycle("challan",
		[]Status{StatusPending, StatusInTransit, StatusDelivered})
	InvoiceLifecycle = OrderedLifecycle("invoice",
		[]Status{StatusDraft, StatusIssued, StatusOverdue, StatusPaid})
	PaymentLifecycle  = DerivedLifecycle("payment", StatusUnpaid, StatusPartial, StatusPaid)
	VehicleLifecycle  = FreeLifecycle("vehicle", StatusActive, StatusMaintenance, StatusInactive)
	DriverLifecycle   = FreeLifecycle("driver", StatusActive, StatusInactive, StatusSuspended)
	RouteLifecycle    = FreeLifecycle("route", StatusActive, StatusInactive)
	CustomerLifecycle = FreeLifecycle("customer", StatusActive, StatusInactive, StatusSuspended)
)

func (l Lifecycle) Name() string { return l.name }

func (l Lifecycle) Ordered() bool { return l.kind == lifecycleOrdered }

func (l Lifecycle) Derived() bool { return l.kind == lifecycleDerived }

// Initial is the status a freshly created document starts in.
func (l Lifecycle) Initial() Status {
	if len(l.sequence) > 0 {
		return l.sequence[0]
	}
	if len(l.statuses) > 0 {
		return l.statuses[0]
	}
	return ""
}

func (l Lifecycle) Statuses() []Status { return slices.Clone(l.statuses) }

func (l Lifecycle) Has(s Status) bool { return slices.Contains(l.statuses, s) }

func (l Lifecycle) CanTransition(current, target Status) bool {
	return l.Check(current, target) == nil
}

// Check returns a *TransitionError when current may not move to target.
func (l Lifecycle) Check(current, target Status) error {
	reject := func(reason string) error {
		return &TransitionError{Lifecycle: l.name, From: current, To: target, Reason: reason}
	}

	if !l.Has(target) {
		return reject("unknown status")
	}

	switch l.kind {
	case lifecycleDerived:
		return reject("status is derived and cannot be set directly")
	case lifecycleOrdered:
		if !CanTransition(current, target, l.sequence) {
			return reject("status can only move forward")
		}
	}

	return nil
}

// Next lists the statuses current may move to, in enum order.
func (l Lifecycle) Next(current Status) []Status {
	out := make([]Status, 0, len(l.statuses))
	for _, s := range l.statuses {
		if l.CanTransition(current, s) {
			out = append(out, s)
		}
	}
	return out
}
