package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"molle-settlement/config"
	cacheMocks "molle-settlement/internal/cache/mocks"
	"molle-settlement/internal/fee"
	"molle-settlement/internal/model"
	notifyMocks "molle-settlement/internal/notify/mocks"
	repoMocks "molle-settlement/internal/repository/mocks"
	"molle-settlement/internal/service"
	serviceMocks "molle-settlement/internal/service/mocks"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeTx 只記錄 Commit/Rollback，其餘方法不應被服務層直接呼叫
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	return d.tx, nil
}

type settlementHarness struct {
	tx         *fakeTx
	bookings   *repoMocks.MockBookingRepository
	payments   *repoMocks.MockPaymentRepository
	ticketData *repoMocks.MockTicketDataRepository
	tickets    *repoMocks.MockTicketRepository
	events     *repoMocks.MockEventRepository
	users      *repoMocks.MockUserRepository
	wallets    *repoMocks.MockWalletTransactionRepository
	fees       *serviceMocks.MockFeeService
	locker     *cacheMocks.MockSettlementLocker
	notifier   *notifyMocks.MockNotifier
	cfg        config.SettlementConfig
}

func newSettlementHarness(t *testing.T) *settlementHarness {
	return &settlementHarness{
		tx:         &fakeTx{},
		bookings:   repoMocks.NewMockBookingRepository(t),
		payments:   repoMocks.NewMockPaymentRepository(t),
		ticketData: repoMocks.NewMockTicketDataRepository(t),
		tickets:    repoMocks.NewMockTicketRepository(t),
		events:     repoMocks.NewMockEventRepository(t),
		users:      repoMocks.NewMockUserRepository(t),
		wallets:    repoMocks.NewMockWalletTransactionRepository(t),
		fees:       serviceMocks.NewMockFeeService(t),
		locker:     cacheMocks.NewMockSettlementLocker(t),
		notifier:   notifyMocks.NewMockNotifier(t),
		cfg:        config.LoadTestConfig().Settlement,
	}
}

func (h *settlementHarness) service() service.SettlementService {
	return service.NewSettlementService(
		&fakeDB{tx: h.tx},
		service.SettlementRepositories{
			Bookings:   h.bookings,
			Payments:   h.payments,
			TicketData: h.ticketData,
			Tickets:    h.tickets,
			Events:     h.events,
			Users:      h.users,
			Wallets:    h.wallets,
		},
		h.fees,
		h.locker,
		h.notifier,
		h.cfg,
	)
}

func (h *settlementHarness) expectLock(orderID string) {
	h.locker.EXPECT().Acquire(mock.Anything, orderID, h.cfg.LockTTL).Return("tok", true, nil).Once()
	h.locker.EXPECT().Release(mock.Anything, orderID, "tok").Return(nil).Once()
}

// expectPrelude 鎖定 booking、載入活動與費率、確認付款與 booking
func (h *settlementHarness) expectPrelude(b *model.Booking, e *model.Event, pct fee.Percentages, existing int) {
	h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, b.OrderID).Return(b, nil).Once()
	h.tickets.EXPECT().CountByBookingID(mock.Anything, h.tx, b.ID).Return(existing, nil).Once()
	h.events.EXPECT().FindByIDTx(mock.Anything, h.tx, e.ID).Return(e, nil).Once()
	h.users.EXPECT().FindByIDTx(mock.Anything, h.tx, e.HostID).Return(testHost(), nil).Once()
	h.fees.EXPECT().ResolvePercentages(mock.Anything, mock.Anything, b.ReferrerID != nil).Return(pct, nil).Once()
	h.payments.EXPECT().FindByBookingID(mock.Anything, h.tx, b.ID).
		Return(&model.Payment{ID: 40, BookingID: b.ID, Status: model.PaymentStatusPending}, nil).Once()
	h.payments.EXPECT().MarkCompleted(mock.Anything, h.tx, 40, "cf_123").Return(nil).Once()
	if !b.IsConfirmed() {
		h.bookings.EXPECT().UpdateStatus(mock.Anything, h.tx, b.ID, model.BookingStatusConfirmed).Return(nil).Once()
	}
}

func (h *settlementHarness) expectTicketData(bookingID int, selections []model.Selection) {
	raw, _ := json.Marshal(selections)
	h.ticketData.EXPECT().FindByBookingID(mock.Anything, h.tx, bookingID).
		Return(&model.TicketData{ID: 50, BookingID: bookingID, Data: raw}, nil).Once()
	h.ticketData.EXPECT().Delete(mock.Anything, h.tx, 50).Return(nil).Once()
}

// expectTickets 期待建立 n 張指定票價的票
func (h *settlementHarness) expectTickets(n int, price string) *[]*model.Ticket {
	created := &[]*model.Ticket{}
	want := decimal.RequireFromString(price)
	h.tickets.EXPECT().Create(mock.Anything, h.tx, mock.MatchedBy(func(t *model.Ticket) bool {
		return t.Price.Equal(want)
	})).Run(func(args mock.Arguments) {
		*created = append(*created, args.Get(2).(*model.Ticket))
	}).Return(&model.Ticket{ID: 1}, nil).Times(n)
	return created
}

func (h *settlementHarness) expectTreasury() {
	h.users.EXPECT().FindByIDTx(mock.Anything, h.tx, h.cfg.TreasuryUserID).
		Return(&model.User{ID: h.cfg.TreasuryUserID, Role: model.RoleAdmin}, nil).Once()
}

func (h *settlementHarness) expectCredit(userID int, party model.WalletParty, amount string) {
	want := decimal.RequireFromString(amount)
	h.wallets.EXPECT().Record(mock.Anything, h.tx, mock.MatchedBy(func(wt *model.WalletTransaction) bool {
		return wt.UserID == userID && wt.Party == party && wt.Amount.Equal(want)
	})).Return(true, nil).Once()
	h.users.EXPECT().CreditWallet(mock.Anything, h.tx, userID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(want)
	})).Return(nil).Once()
}

func standardPct() fee.Percentages {
	return fee.Percentages{
		UserFee:     decimal.NewFromInt(5),
		HostFee:     decimal.NewFromInt(6),
		PlatformFee: decimal.Zero,
		CGST:        decimal.NewFromInt(9),
		SGST:        decimal.NewFromInt(9),
		Referral:    decimal.Zero,
	}
}

func testHost() *model.User {
	return &model.User{ID: 5, Name: "Host", Role: model.RoleHost}
}

func testBooking() *model.Booking {
	return &model.Booking{
		ID:          10,
		OrderID:     "order_1",
		UserID:      7,
		EventID:     3,
		TicketCount: 2,
		TotalAmount: decimal.NewFromInt(246),
		Status:      model.BookingStatusPending,
	}
}

func testEvent() *model.Event {
	return &model.Event{
		ID:         3,
		Name:       "Sunburn",
		HostID:     5,
		MaxTickets: 100,
		Packages: []*model.Package{
			{ID: 30, EventID: 3, Name: "GA", Price: decimal.NewFromInt(100)},
			{ID: 31, EventID: 3, Name: "VIP", Price: decimal.NewFromInt(200)},
		},
	}
}

func successCommand(orderID string) model.SettlementCommand {
	return model.SettlementCommand{
		Source: model.SettlementSourceWebhook,
		Data: model.WebhookData{
			Order: model.OrderInfo{OrderID: orderID},
			Payment: model.PaymentInfo{
				CfPaymentID:   "cf_123",
				PaymentStatus: "SUCCESS",
			},
			CustomerDetails: model.CustomerDetails{
				CustomerName:  "Asha",
				CustomerPhone: "9000000000",
			},
		},
	}
}

func holders(names ...string) []model.Holder {
	out := make([]model.Holder, len(names))
	for i, n := range names {
		out[i] = model.Holder{Name: n, Age: 25, Phone: "9000000000"}
	}
	return out
}

func TestSettlementService_ApplySettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 2, Holders: holders("Asha", "Ravi")},
		})
		created := h.expectTickets(2, "123")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "188")
		h.expectCredit(1, model.WalletPartyAdmin, "22")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 2).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		// 執行
		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		// 驗證結果
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 10, result.BookingID)
		assert.Equal(t, 2, result.TicketCount)
		assert.Equal(t, 2, result.TicketsCreated)
		assert.False(t, result.Degraded)
		assert.Empty(t, result.SkippedLines)
		assert.Len(t, result.Credits, 2)
		assert.True(t, h.tx.committed)

		require.Len(t, *created, 2)
		first, second := (*created)[0], (*created)[1]
		assert.NotEqual(t, first.TicketNumber, second.TicketNumber)
		assert.NotEqual(t, first.QRCode, second.QRCode)
		assert.Contains(t, first.QRCode, first.TicketNumber)
		assert.Equal(t, "Asha", first.HolderName)
		assert.Equal(t, "Ravi", second.HolderName)
		assert.Equal(t, 7, first.UserID)
		assert.Equal(t, 30, first.PackageID)
	})

	t.Run("AlreadySettled", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking := testBooking()
		booking.Status = model.BookingStatusConfirmed

		h.expectLock("order_1")
		h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, "order_1").Return(booking, nil).Once()
		h.tickets.EXPECT().CountByBookingID(mock.Anything, h.tx, 10).Return(2, nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadySettled)
		assert.Equal(t, 2, result.TicketCount)
		assert.Zero(t, result.TicketsCreated)
		assert.False(t, h.tx.committed)
		h.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		h.users.AssertNotCalled(t, "CreditWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		h.events.AssertNotCalled(t, "IncrementSoldTickets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - PaymentNotSuccessful", func(t *testing.T) {
		h := newSettlementHarness(t)
		cmd := successCommand("order_1")
		cmd.Data.Payment.PaymentStatus = "FAILED"

		h.expectLock("order_1")
		h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, "order_1").Return(testBooking(), nil).Once()

		_, err := h.service().ApplySettlement(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentNotSuccessful)
		assert.True(t, h.tx.rolledBack)
		h.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SuccessStatusCaseInsensitive", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking := testBooking()
		booking.Status = model.BookingStatusConfirmed
		cmd := successCommand("order_1")
		cmd.Data.Payment.PaymentStatus = "success"

		h.expectLock("order_1")
		h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, "order_1").Return(booking, nil).Once()
		h.tickets.EXPECT().CountByBookingID(mock.Anything, h.tx, 10).Return(1, nil).Once()

		result, err := h.service().ApplySettlement(ctx, cmd)
		require.NoError(t, err)
		assert.True(t, result.AlreadySettled)
	})

	t.Run("Failed - BookingNotFound", func(t *testing.T) {
		h := newSettlementHarness(t)

		h.expectLock("order_missing")
		h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, "order_missing").
			Return(nil, apperrors.ErrBookingNotFound).Once()

		_, err := h.service().ApplySettlement(ctx, successCommand("order_missing"))

		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
		assert.False(t, h.tx.committed)
	})

	t.Run("Failed - MissingOrderID", func(t *testing.T) {
		h := newSettlementHarness(t)

		_, err := h.service().ApplySettlement(ctx, successCommand("  "))

		assert.ErrorIs(t, err, apperrors.ErrMissingOrderID)
		h.locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - InProgress", func(t *testing.T) {
		h := newSettlementHarness(t)
		h.locker.EXPECT().Acquire(mock.Anything, "order_1", h.cfg.LockTTL).Return("", false, nil).Once()

		_, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		assert.ErrorIs(t, err, apperrors.ErrSettlementInProgress)
		h.bookings.AssertNotCalled(t, "FindByOrderIDWithLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LockUnavailable falls back to row lock", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking := testBooking()
		booking.Status = model.BookingStatusConfirmed

		h.locker.EXPECT().Acquire(mock.Anything, "order_1", h.cfg.LockTTL).Return("", false, errors.New("redis down")).Once()
		h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, "order_1").Return(booking, nil).Once()
		h.tickets.EXPECT().CountByBookingID(mock.Anything, h.tx, 10).Return(2, nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.True(t, result.AlreadySettled)
		h.locker.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PartialLines", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 1, Holders: holders("Asha")},
			{PackageID: 99, Quantity: 1, Holders: holders("Ghost")},
			{PackageID: 31, Quantity: 2, Holders: holders("Ravi")},
			{PackageID: 31, Quantity: 0},
		})
		h.expectTickets(1, "123")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "94")
		h.expectCredit(1, model.WalletPartyAdmin, "11")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.Equal(t, 1, result.TicketsCreated)
		assert.Equal(t, 1, result.TicketCount)
		require.Len(t, result.SkippedLines, 3)
		assert.Equal(t, 1, result.SkippedLines[0].Line)
		assert.Equal(t, "unknown package", result.SkippedLines[0].Reason)
		assert.Equal(t, "missing holder name", result.SkippedLines[1].Reason)
		assert.Equal(t, "invalid quantity", result.SkippedLines[2].Reason)
		assert.True(t, h.tx.committed)
	})

	t.Run("DegradedFallback", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()
		vip := 31
		booking.PackageID = &vip

		cmd := successCommand("order_1")
		cmd.Data.Order.OrderTags = map[string]string{
			"quantity":   "2",
			"host_gets":  "376",
			"admin_gets": "44",
		}

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.ticketData.EXPECT().FindByBookingID(mock.Anything, h.tx, 10).Return(nil, apperrors.ErrTicketDataNotFound).Once()
		created := h.expectTickets(2, "246")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "376")
		h.expectCredit(1, model.WalletPartyAdmin, "44")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 2).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.Degraded)
		assert.Equal(t, 2, result.TicketsCreated)
		require.Len(t, *created, 2)
		assert.Equal(t, "Asha", (*created)[0].HolderName)
		assert.Equal(t, 18, (*created)[0].HolderAge)
		assert.Equal(t, 31, (*created)[0].PackageID)
		h.ticketData.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DegradedFallbackIgnoresUnresolvablePackageTag", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()

		cmd := successCommand("order_1")
		cmd.Data.Order.OrderTags = map[string]string{"package_id": "pkg-GA"}

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.ticketData.EXPECT().FindByBookingID(mock.Anything, h.tx, 10).Return(nil, apperrors.ErrTicketDataNotFound).Once()
		created := h.expectTickets(1, "123")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "94")
		h.expectCredit(1, model.WalletPartyAdmin, "11")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.Degraded)
		assert.Equal(t, 1, result.TicketsCreated)
		require.Len(t, *created, 1)
		assert.Equal(t, 30, (*created)[0].PackageID)
		assert.Empty(t, result.SkippedLines)
	})

	t.Run("DegradedFallbackStaleBookingPackageUsesTag", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()
		removed := 99
		booking.PackageID = &removed

		cmd := successCommand("order_1")
		cmd.Data.Order.OrderTags = map[string]string{"package_id": "31"}

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.ticketData.EXPECT().FindByBookingID(mock.Anything, h.tx, 10).Return(nil, apperrors.ErrTicketDataNotFound).Once()
		created := h.expectTickets(1, "246")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "188")
		h.expectCredit(1, model.WalletPartyAdmin, "22")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		_, err := h.service().ApplySettlement(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, *created, 1)
		assert.Equal(t, 31, (*created)[0].PackageID)
	})

	t.Run("AllTicketDataLinesInvalidFallsBack", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 999, Quantity: 2, Holders: holders("Asha", "Ravi")},
		})
		created := h.expectTickets(1, "123")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "94")
		h.expectCredit(1, model.WalletPartyAdmin, "11")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.True(t, result.Degraded)
		assert.Equal(t, 1, result.TicketsCreated)
		require.Len(t, *created, 1)
		assert.Equal(t, 30, (*created)[0].PackageID)
		assert.Equal(t, "Asha", (*created)[0].HolderName)
		require.Len(t, result.SkippedLines, 1)
		assert.Equal(t, 999, result.SkippedLines[0].PackageID)
		assert.Equal(t, "unknown package", result.SkippedLines[0].Reason)
		assert.True(t, h.tx.committed)
	})

	t.Run("NoTicketsIssuedRollsBack", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()
		event.Packages = nil

		raw, _ := json.Marshal([]model.Selection{{PackageID: 999, Quantity: 1, Holders: holders("Asha")}})
		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.ticketData.EXPECT().FindByBookingID(mock.Anything, h.tx, 10).
			Return(&model.TicketData{ID: 50, BookingID: 10, Data: raw}, nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.ErrorIs(t, err, apperrors.ErrNoTicketsIssued)
		assert.Nil(t, result)
		assert.False(t, h.tx.committed)
		assert.True(t, h.tx.rolledBack)
		h.ticketData.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		h.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OverlongHolderSkipped", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()

		longPhone := holders("Asha")
		longPhone[0].Phone = strings.Repeat("9", model.MaxHolderPhoneLength+1)
		longName := holders(strings.Repeat("名", model.MaxHolderNameLength+1))

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 1, Holders: longPhone},
			{PackageID: 30, Quantity: 1, Holders: longName},
			{PackageID: 31, Quantity: 1, Holders: holders("Ravi")},
		})
		created := h.expectTickets(1, "246")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "188")
		h.expectCredit(1, model.WalletPartyAdmin, "22")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.False(t, result.Degraded)
		require.Len(t, *created, 1)
		assert.Equal(t, "Ravi", (*created)[0].HolderName)
		require.Len(t, result.SkippedLines, 2)
		assert.Equal(t, 0, result.SkippedLines[0].Line)
		assert.Equal(t, "invalid holder", result.SkippedLines[0].Reason)
		assert.Equal(t, 1, result.SkippedLines[1].Line)
		assert.Equal(t, "invalid holder", result.SkippedLines[1].Reason)
	})

	t.Run("MalformedTicketDataUsesBuyerProfile", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()
		cmd := successCommand("order_1")
		cmd.Data.CustomerDetails = model.CustomerDetails{}
		phone := "9111111111"

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.ticketData.EXPECT().FindByBookingID(mock.Anything, h.tx, 10).
			Return(&model.TicketData{ID: 50, BookingID: 10, Data: json.RawMessage(`{"broken":`)}, nil).Once()
		h.users.EXPECT().FindByIDTx(mock.Anything, h.tx, 7).
			Return(&model.User{ID: 7, Name: "Buyer", Phone: &phone, Role: model.RoleUser}, nil).Once()
		created := h.expectTickets(1, "123")
		h.ticketData.EXPECT().Delete(mock.Anything, h.tx, 50).Return(nil).Once()
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "94")
		h.expectCredit(1, model.WalletPartyAdmin, "11")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.Degraded)
		require.Len(t, *created, 1)
		assert.Equal(t, "Buyer", (*created)[0].HolderName)
		assert.Equal(t, phone, (*created)[0].HolderPhone)
		assert.Equal(t, 30, (*created)[0].PackageID)
	})

	t.Run("ReferrerCredited", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()
		referrer := 9
		booking.ReferrerID = &referrer
		pct := standardPct()
		pct.Referral = decimal.NewFromInt(10)

		h.expectLock("order_1")
		h.expectPrelude(booking, event, pct, 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 1, Holders: holders("Asha")},
		})
		h.expectTickets(1, "123")
		h.expectTreasury()
		h.expectCredit(5, model.WalletPartyHost, "84.6")
		h.expectCredit(1, model.WalletPartyAdmin, "11")
		h.expectCredit(9, model.WalletPartyReferrer, "9.4")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.Len(t, result.Credits, 3)
	})

	t.Run("TreasuryFallsBackToFirstAdmin", func(t *testing.T) {
		h := newSettlementHarness(t)
		h.cfg.TreasuryUserID = 0
		booking, event := testBooking(), testEvent()

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 1, Holders: holders("Asha")},
		})
		h.expectTickets(1, "123")
		h.users.EXPECT().FindFirstAdmin(mock.Anything, h.tx).Return(&model.User{ID: 2, Role: model.RoleAdmin}, nil).Once()
		h.expectCredit(5, model.WalletPartyHost, "94")
		h.expectCredit(2, model.WalletPartyAdmin, "11")
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(nil).Once()

		_, err := h.service().ApplySettlement(ctx, successCommand("order_1"))
		require.NoError(t, err)
	})

	t.Run("Failed - NoTreasury", func(t *testing.T) {
		h := newSettlementHarness(t)
		h.cfg.TreasuryUserID = 0
		booking, event := testBooking(), testEvent()

		h.expectLock("order_1")
		h.expectPrelude(booking, event, standardPct(), 0)
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 1, Holders: holders("Asha")},
		})
		h.expectTickets(1, "123")
		h.users.EXPECT().FindFirstAdmin(mock.Anything, h.tx).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		assert.ErrorIs(t, err, apperrors.ErrTreasuryNotConfigured)
		assert.False(t, h.tx.committed)
		assert.True(t, h.tx.rolledBack)
	})

	t.Run("LedgerAlreadyRecorded", func(t *testing.T) {
		h := newSettlementHarness(t)
		booking, event := testBooking(), testEvent()
		booking.Status = model.BookingStatusConfirmed

		// booking 已確認但尚未開票；入帳紀錄已存在時不重複加錢包
		h.expectLock("order_1")
		h.bookings.EXPECT().FindByOrderIDWithLock(mock.Anything, h.tx, "order_1").Return(booking, nil).Once()
		h.tickets.EXPECT().CountByBookingID(mock.Anything, h.tx, 10).Return(0, nil).Once()
		h.events.EXPECT().FindByIDTx(mock.Anything, h.tx, 3).Return(event, nil).Once()
		h.users.EXPECT().FindByIDTx(mock.Anything, h.tx, 5).Return(testHost(), nil).Once()
		h.fees.EXPECT().ResolvePercentages(mock.Anything, mock.Anything, false).Return(standardPct(), nil).Once()
		h.payments.EXPECT().FindByBookingID(mock.Anything, h.tx, 10).Return(nil, apperrors.ErrPaymentNotFound).Once()
		h.expectTicketData(booking.ID, []model.Selection{
			{PackageID: 30, Quantity: 1, Holders: holders("Asha")},
		})
		h.expectTickets(1, "123")
		h.expectTreasury()
		h.wallets.EXPECT().Record(mock.Anything, h.tx, mock.Anything).Return(false, nil).Twice()
		h.events.EXPECT().IncrementSoldTickets(mock.Anything, h.tx, 3, 1).Return(nil).Once()
		h.notifier.EXPECT().TicketsIssued(mock.Anything, 7, mock.Anything).Return(errors.New("pubnub down")).Once()

		result, err := h.service().ApplySettlement(ctx, successCommand("order_1"))

		require.NoError(t, err)
		assert.Empty(t, result.Credits)
		h.users.AssertNotCalled(t, "CreditWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		h.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSettlementService_Credits(t *testing.T) {
	ctx := context.Background()
	h := newSettlementHarness(t)

	h.bookings.EXPECT().FindByOrderID(mock.Anything, "order_1").Return(testBooking(), nil).Once()
	h.wallets.EXPECT().ListByBookingID(mock.Anything, 10).Return([]*model.WalletTransaction{
		{ID: 1, UserID: 5, BookingID: 10, Party: model.WalletPartyHost, Amount: decimal.NewFromInt(188), CreatedAt: time.Now()},
	}, nil).Once()

	credits, err := h.service().Credits(ctx, "order_1")
	require.NoError(t, err)
	assert.Len(t, credits, 1)
}

func TestParseSelections(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		got, err := service.ParseSelections(json.RawMessage(`[{"packageId":30,"quantity":1,"holders":[{"name":"Asha","age":20,"phone":"9"}]}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 30, got[0].PackageID)
		assert.Equal(t, "Asha", got[0].Holders[0].Name)
	})

	t.Run("wrapped", func(t *testing.T) {
		got, err := service.ParseSelections(json.RawMessage(`{"tickets":[{"packageId":31,"quantity":2}]}`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Quantity)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := service.ParseSelections(json.RawMessage(`[]`))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := service.ParseSelections(json.RawMessage(`{"broken":`))
		assert.Error(t, err)
	})
}
