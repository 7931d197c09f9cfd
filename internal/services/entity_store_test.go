package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"transport-management-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLorryReceiptLifecycle(t *testing.T) {
	rec := &captureRecorder{}
	reg := newTestRegistry(rec)
	ctx := context.Background()

	lr, err := reg.LorryReceipts.Create(ctx, domain.LorryReceipt{
		Consigner:   "Retail Hub",
		Consignee:   "Metro Stores",
		Origin:      "Pune",
		Destination: "Hyderabad",
		WeightKg:    3600,
		Rate:        dec(7200),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, lr.Status)
	assert.Equal(t, "LR-2024-001", lr.LRNumber)
	assert.True(t, lr.TotalValue().Equal(dec(25920)))

	_, err = reg.LorryReceipts.ChangeStatus(ctx, lr.ID, domain.StatusCreated)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	moved, err := reg.LorryReceipts.ChangeStatus(ctx, lr.ID, domain.StatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, moved.Status)

	_, err = reg.LorryReceipts.ChangeStatus(ctx, lr.ID, domain.StatusCreated)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := reg.LorryReceipts.Get(ctx, lr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, got.Status, "rejected change must not mutate")

	ts := rec.transitions()
	require.Len(t, ts, 2)
	assert.Equal(t, domain.Status(""), ts[0].From)
	assert.Equal(t, domain.StatusCreated, ts[0].To)
	assert.Equal(t, domain.StatusCreated, ts[1].From)
	assert.Equal(t, domain.StatusInTransit, ts[1].To)
}

func TestStoreCreateRejectsMissingFields(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	_, err := reg.LorryReceipts.Create(ctx, domain.LorryReceipt{Consigner: "ABC Traders"})
	assert.ErrorIs(t, err, domain.ErrValidationMissing)
	assert.Equal(t, 0, reg.LorryReceipts.Len(), "failed create must not insert")
}

func TestStoreCreatePrependsAndNumbersBySize(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	require.NoError(t, reg.Challans.Seed(ctx,
		domain.Challan{ID: "1", ChallanNumber: "CH-2024-001", LRNumber: "LR-2024-001", VehicleNumber: "MH-01", Status: domain.StatusInTransit},
		domain.Challan{ID: "2", ChallanNumber: "CH-2024-002", LRNumber: "LR-2024-002", VehicleNumber: "KA-01", Status: domain.StatusDelivered},
	))

	ch, err := reg.Challans.Create(ctx, domain.Challan{LRNumber: "LR-2024-003", VehicleNumber: "DL-01"})
	require.NoError(t, err)
	assert.Equal(t, "CH-2024-003", ch.ChallanNumber)
	assert.Equal(t, domain.StatusPending, ch.Status)
	assert.Equal(t, "TBD", ch.Route)

	all, err := reg.Challans.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ch.ID, all[0].ID, "new documents go first")
	assert.Equal(t, "1", all[1].ID)
}

func TestStoreSeedRejectsDuplicateIDs(t *testing.T) {
	reg := newTestRegistry(nil)

	err := reg.Vehicles.Seed(context.Background(),
		domain.Vehicle{ID: "1", VehicleNumber: "A", Type: "t", Status: domain.StatusActive},
		domain.Vehicle{ID: "1", VehicleNumber: "B", Type: "t", Status: domain.StatusActive},
	)
	assert.Error(t, err)
}

func TestStoreSeedRejectsStatusOutsideLifecycle(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	err := reg.LorryReceipts.Seed(ctx,
		domain.LorryReceipt{ID: "ok", LRNumber: "LR-2024-001", Status: domain.StatusInTransit},
		domain.LorryReceipt{ID: "a", LRNumber: "LR-2024-002", Status: "in_trnsit"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "in_trnsit"`)
	assert.Equal(t, 0, reg.LorryReceipts.Len(), "rejected batch must not insert")

	err = reg.Vehicles.Seed(ctx, domain.Vehicle{ID: "v", VehicleNumber: "MH-01", Type: "t", Status: domain.StatusDelivered})
	assert.Error(t, err)
}

func TestStoreSeedDefaultsMissingStatusToInitial(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	require.NoError(t, reg.LorryReceipts.Seed(ctx,
		domain.LorryReceipt{ID: "b", LRNumber: "LR-2024-009", Consigner: "ABC Traders"},
	))

	lr, err := reg.LorryReceipts.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, lr.Status)
	assert.Equal(t, "LR-2024-009", lr.LRNumber, "existing fields are kept")
	assert.Equal(t, "ABC Traders", lr.Consigner)

	_, err = reg.LorryReceipts.ChangeStatus(ctx, "b", domain.StatusCreated)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	counts, err := reg.LorryReceipts.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.StatusCreated])
	_, stray := counts[""]
	assert.False(t, stray)
}

func TestStoreRecordsTransitionsInApplyOrder(t *testing.T) {
	rec := &slowRecorder{}
	reg := NewRegistry(RegistryOptions{Recorder: rec, Clock: fixedClock, NewID: sequentialIDs("doc")})
	ctx := context.Background()

	v, err := reg.Vehicles.Create(ctx, domain.Vehicle{VehicleNumber: "MH-01-AB-1234", Type: "10 Wheeler"})
	require.NoError(t, err)

	targets := []domain.Status{domain.StatusMaintenance, domain.StatusInactive, domain.StatusActive}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(target domain.Status) {
			defer wg.Done()
			_, err := reg.Vehicles.ChangeStatus(ctx, v.ID, target)
			assert.NoError(t, err)
		}(targets[i%len(targets)])
	}
	wg.Wait()

	ts := rec.transitions()
	require.Len(t, ts, 31)
	for i := 1; i < len(ts); i++ {
		assert.Equal(t, ts[i-1].To, ts[i].From, "transition %d does not follow %d", i, i-1)
	}

	got, err := reg.Vehicles.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, ts[len(ts)-1].To, got.Status)
}

func TestStoreListFiltersBySearchAndStatus(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()
	require.NoError(t, reg.LorryReceipts.Seed(ctx,
		domain.LorryReceipt{ID: "1", LRNumber: "LR-2024-001", Consigner: "ABC Traders", Destination: "Delhi", Status: domain.StatusInTransit},
		domain.LorryReceipt{ID: "2", LRNumber: "LR-2024-002", Consigner: "Tech Solutions", Destination: "Chennai", Status: domain.StatusDelivered},
		domain.LorryReceipt{ID: "3", LRNumber: "LR-2024-003", Consigner: "Retail Hub", Destination: "Hyderabad", Status: domain.StatusCreated},
	))

	tests := []struct {
		name   string
		search string
		status string
		want   []string
	}{
		{"no filter", "", "", []string{"1", "2", "3"}},
		{"all wildcard", "", "all", []string{"1", "2", "3"}},
		{"case insensitive consigner", "abc", "", []string{"1"}},
		{"number fragment", "2024-00", "", []string{"1", "2", "3"}},
		{"status only", "", "delivered", []string{"2"}},
		{"search and status", "tech", "created", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reg.LorryReceipts.List(ctx, tc.search, tc.status)
			require.NoError(t, err)

			var ids []string
			for _, lr := range got {
				ids = append(ids, lr.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestStoreFreeLifecycleAllowsAnyMember(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	v, err := reg.Vehicles.Create(ctx, domain.Vehicle{VehicleNumber: "MH-01-AB-1234", Type: "10 Wheeler"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, v.Status)

	v, err = reg.Vehicles.ChangeStatus(ctx, v.ID, domain.StatusMaintenance)
	require.NoError(t, err)
	v, err = reg.Vehicles.ChangeStatus(ctx, v.ID, domain.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, v.Status)

	_, err = reg.Vehicles.ChangeStatus(ctx, v.ID, domain.StatusSuspended)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestStorePaymentStatusCannotBeSet(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	p, err := reg.Payments.Create(ctx, domain.Payment{InvoiceNumber: "INV-2024-002", InvoiceAmount: dec(75000), PaidAmount: dec(45000)})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, p.Status)
	assert.True(t, p.RemainingBalance.Equal(dec(30000)))

	_, err = reg.Payments.ChangeStatus(ctx, p.ID, domain.StatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestStoreUnknownID(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()

	_, err := reg.Invoices.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = reg.Invoices.ChangeStatus(ctx, "nope", domain.StatusIssued)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreRecorderFailureDoesNotFailMutation(t *testing.T) {
	rec := &captureRecorder{err: errors.New("journal down")}
	reg := newTestRegistry(rec)

	d, err := reg.Drivers.Create(context.Background(), domain.Driver{Name: "Rajesh Kumar", LicenseNumber: "DL-0001"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, d.Status)
	assert.Len(t, rec.transitions(), 1)
}

func TestStoreCountByStatusIncludesEmptyStatuses(t *testing.T) {
	reg := newTestRegistry(nil)
	ctx := context.Background()
	require.NoError(t, reg.Routes.Seed(ctx, domain.Route{ID: "1", RouteName: "A", Origin: "x", Destination: "y", Status: domain.StatusActive}))

	counts, err := reg.Routes.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Status]int{domain.StatusActive: 1, domain.StatusInactive: 0}, counts)
}

func TestRecordersJoinErrors(t *testing.T) {
	ok := &captureRecorder{}
	bad := &captureRecorder{err: errors.New("kafka down")}

	err := Recorders{ok, nil, bad}.RecordTransition(context.Background(), domain.Transition{Resource: domain.ResourceLR, DocumentID: "1"})
	assert.ErrorContains(t, err, "kafka down")
	assert.Len(t, ok.transitions(), 1)
	assert.Len(t, bad.transitions(), 1)
}
