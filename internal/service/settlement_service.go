package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"molle-settlement/config"
	"molle-settlement/internal/cache"
	"molle-settlement/internal/database"
	"molle-settlement/internal/fee"
	"molle-settlement/internal/metrics"
	"molle-settlement/internal/model"
	"molle-settlement/internal/notify"
	"molle-settlement/internal/repository"
	apperrors "molle-settlement/pkg/app_errors"
	"molle-settlement/pkg/logger"
	"molle-settlement/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Order tag keys written by the checkout flow.
const (
	TagQuantity       = "quantity"
	TagPackageID      = "package_id"
	TagHostGets       = "host_gets"
	TagAdminGets      = "admin_gets"
	TagReferralAmount = "referral_amount"
)

type SettlementService interface {
	// ApplySettlement 確認付款、開票、入帳並累加已售張數，整段在同一個交易內
	ApplySettlement(ctx context.Context, cmd model.SettlementCommand) (*model.SettlementResult, error)
	// Credits 查詢某筆訂單的入帳紀錄
	Credits(ctx context.Context, orderID string) ([]*model.WalletTransaction, error)
}

type SettlementRepositories struct {
	Bookings   repository.BookingRepository
	Payments   repository.PaymentRepository
	TicketData repository.TicketDataRepository
	Tickets    repository.TicketRepository
	Events     repository.EventRepository
	Users      repository.UserRepository
	Wallets    repository.WalletTransactionRepository
}

type SettlementServiceImpl struct {
	db       database.TxBeginner
	repos    SettlementRepositories
	fees     FeeService
	locker   cache.SettlementLocker
	notifier notify.Notifier
	cfg      config.SettlementConfig
}

func NewSettlementService(
	db database.TxBeginner,
	repos SettlementRepositories,
	fees FeeService,
	locker cache.SettlementLocker,
	notifier notify.Notifier,
	cfg config.SettlementConfig,
) SettlementService {
	return &SettlementServiceImpl{
		db:       db,
		repos:    repos,
		fees:     fees,
		locker:   locker,
		notifier: notifier,
		cfg:      cfg,
	}
}

// lineResult 一個選購行的處理結果
type lineResult struct {
	pkg       *model.Package
	quantity  int
	holders   []model.Holder
	breakdown fee.Breakdown
}

func (s *SettlementServiceImpl) ApplySettlement(ctx context.Context, cmd model.SettlementCommand) (*model.SettlementResult, error) {
	start := time.Now()
	source := string(cmd.Source)
	orderID := strings.TrimSpace(cmd.OrderID())
	log := logger.WithComponent("settlement").With(zap.String("order_id", orderID), zap.String("source", source))

	if orderID == "" {
		return nil, apperrors.ErrMissingOrderID
	}

	token, locked, err := s.locker.Acquire(ctx, orderID, s.cfg.LockTTL)
	if err != nil {
		// booking 列鎖仍會序列化並行結算，Redis 失效時不阻擋
		log.Warn("settlement lock unavailable, relying on row lock", zap.Error(err))
	} else if !locked {
		metrics.ObserveSettlement(source, metrics.OutcomeInProgress, time.Since(start))
		return nil, apperrors.ErrSettlementInProgress
	} else {
		defer func() {
			if err := s.locker.Release(context.Background(), orderID, token); err != nil {
				log.Warn("release settlement lock failed", zap.Error(err))
			}
		}()
	}

	result, buyerID, err := s.settle(ctx, orderID, cmd, log)
	metrics.ObserveSettlement(source, outcomeOf(result, err), time.Since(start))
	if err != nil {
		return nil, err
	}

	if result.TicketsCreated > 0 {
		metrics.TicketsIssued(result.TicketsCreated)
		if err := s.notifier.TicketsIssued(ctx, buyerID, result); err != nil {
			log.Warn("buyer notification failed", zap.Error(err))
		}
	}

	return result, nil
}

func outcomeOf(result *model.SettlementResult, err error) string {
	switch {
	case err == nil && result.AlreadySettled:
		return metrics.OutcomeAlreadySettled
	case err == nil:
		return metrics.OutcomeSettled
	case errors.Is(err, apperrors.ErrBookingNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, apperrors.ErrPaymentNotSuccessful):
		return metrics.OutcomeNotSuccessful
	default:
		return metrics.OutcomeError
	}
}

func (s *SettlementServiceImpl) settle(ctx context.Context, orderID string, cmd model.SettlementCommand, log *zap.Logger) (*model.SettlementResult, int, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback(ctx)

	// 1. lookup (row lock held until commit)
	booking, err := s.repos.Bookings.FindByOrderIDWithLock(ctx, tx, orderID)
	if err != nil {
		return nil, 0, err
	}

	// 2. guard
	status := cmd.Data.Payment.PaymentStatus
	if !strings.EqualFold(status, s.cfg.SuccessStatus) {
		return nil, 0, fmt.Errorf("%w: status %q", apperrors.ErrPaymentNotSuccessful, status)
	}

	// 3. idempotency
	existing, err := s.repos.Tickets.CountByBookingID(ctx, tx, booking.ID)
	if err != nil {
		return nil, 0, err
	}
	if booking.IsConfirmed() && existing > 0 {
		log.Info("booking already settled", zap.Int("booking_id", booking.ID), zap.Int("tickets", existing))
		return &model.SettlementResult{
			Success:        true,
			Message:        "Booking already settled",
			BookingID:      booking.ID,
			TicketCount:    existing,
			AlreadySettled: true,
		}, booking.UserID, nil
	}

	event, err := s.repos.Events.FindByIDTx(ctx, tx, booking.EventID)
	if err != nil {
		return nil, 0, err
	}
	host, err := s.repos.Users.FindByIDTx(ctx, tx, event.HostID)
	if err != nil {
		return nil, 0, fmt.Errorf("load host: %w", err)
	}
	pct, err := s.fees.ResolvePercentages(ctx, host, booking.ReferrerID != nil)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve fees: %w", err)
	}

	// 4. payment
	payment, err := s.repos.Payments.FindByBookingID(ctx, tx, booking.ID)
	switch {
	case errors.Is(err, apperrors.ErrPaymentNotFound):
		log.Warn("no payment record for booking", zap.Int("booking_id", booking.ID))
	case err != nil:
		return nil, 0, err
	default:
		if err := s.repos.Payments.MarkCompleted(ctx, tx, payment.ID, string(cmd.Data.Payment.CfPaymentID)); err != nil {
			return nil, 0, err
		}
	}

	// 5. booking
	if !booking.IsConfirmed() {
		if !booking.Status.CanTransitionTo(model.BookingStatusConfirmed) {
			return nil, 0, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatus, booking.Status, model.BookingStatusConfirmed)
		}
		if err := s.repos.Bookings.UpdateStatus(ctx, tx, booking.ID, model.BookingStatusConfirmed); err != nil {
			return nil, 0, err
		}
	}

	result := &model.SettlementResult{
		Success:   true,
		BookingID: booking.ID,
	}

	selections, ticketData, degraded, err := s.loadSelections(ctx, tx, booking, event, cmd.Data, log)
	if err != nil {
		return nil, 0, err
	}
	result.Degraded = degraded

	// 6. tickets
	var lines []lineResult
	if existing == 0 {
		lines, err = s.materialize(ctx, tx, booking, event, pct, selections, result, log)
		if err != nil {
			return nil, 0, err
		}
		// ticket_data 每一行都不合格時改用重建的選購行
		if result.TicketsCreated == 0 && !degraded {
			log.Warn("no valid ticket data lines, reconstructing selection", zap.Int("booking_id", booking.ID))
			sel, err := s.fallbackSelection(ctx, tx, booking, event, cmd.Data)
			if err != nil {
				return nil, 0, err
			}
			degraded = true
			result.Degraded = true
			lines, err = s.materialize(ctx, tx, booking, event, pct, []model.Selection{sel}, result, log)
			if err != nil {
				return nil, 0, err
			}
		}
		if result.TicketsCreated == 0 {
			return nil, 0, fmt.Errorf("%w: booking %d", apperrors.ErrNoTicketsIssued, booking.ID)
		}
		if ticketData != nil {
			if err := s.repos.TicketData.Delete(ctx, tx, ticketData.ID); err != nil {
				return nil, 0, err
			}
		}
	} else {
		lines = s.priceLines(event, pct, selections, nil, log)
	}

	// 7. wallets
	credits, err := s.creditWallets(ctx, tx, booking, event, lines, cmd.Data.Order.OrderTags, log)
	if err != nil {
		return nil, 0, err
	}
	result.Credits = credits

	// 8. capacity counter
	increment := result.TicketsCreated
	if increment == 0 && existing > 0 {
		increment = booking.TicketCount
	}
	if err := s.repos.Events.IncrementSoldTickets(ctx, tx, event.ID, increment); err != nil {
		return nil, 0, err
	}
	if event.MaxTickets > 0 && event.SoldTickets+increment > event.MaxTickets {
		log.Warn("sold tickets exceed capacity",
			zap.Int("event_id", event.ID),
			zap.Int("sold", event.SoldTickets+increment),
			zap.Int("max", event.MaxTickets),
		)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}

	// 9. result
	result.TicketCount = existing + result.TicketsCreated
	result.Message = fmt.Sprintf("Payment released, %d ticket(s) issued", result.TicketsCreated)
	metrics.SkippedLines(len(result.SkippedLines))
	if degraded {
		metrics.DegradedSettlement()
	}
	for _, c := range credits {
		metrics.WalletCredited(string(c.Party), c.Amount.InexactFloat64())
	}

	log.Info("settlement applied",
		zap.Int("booking_id", booking.ID),
		zap.Int("tickets_created", result.TicketsCreated),
		zap.Int("skipped_lines", len(result.SkippedLines)),
		zap.Bool("degraded", degraded),
	)

	return result, booking.UserID, nil
}

// loadSelections 優先使用 ticket_data；缺少或格式錯誤時重建單一選購行
func (s *SettlementServiceImpl) loadSelections(
	ctx context.Context,
	tx pgx.Tx,
	booking *model.Booking,
	event *model.Event,
	data model.WebhookData,
	log *zap.Logger,
) ([]model.Selection, *model.TicketData, bool, error) {
	td, err := s.repos.TicketData.FindByBookingID(ctx, tx, booking.ID)
	switch {
	case errors.Is(err, apperrors.ErrTicketDataNotFound):
		td = nil
	case err != nil:
		return nil, nil, false, err
	}

	if td != nil {
		selections, perr := ParseSelections(td.Data)
		if perr == nil {
			return selections, td, false, nil
		}
		log.Warn("malformed ticket data, reconstructing selection", zap.Int("booking_id", booking.ID), zap.Error(perr))
	} else {
		log.Warn("no ticket data, reconstructing selection", zap.Int("booking_id", booking.ID))
	}

	sel, err := s.fallbackSelection(ctx, tx, booking, event, data)
	if err != nil {
		return nil, nil, false, err
	}
	return []model.Selection{sel}, td, true, nil
}

// ParseSelections 接受陣列，或包在 {"tickets": [...]} / {"selections": [...]} 內
func ParseSelections(raw json.RawMessage) ([]model.Selection, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty ticket data")
	}

	var list []model.Selection
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Tickets    []model.Selection `json:"tickets"`
			Selections []model.Selection `json:"selections"`
		}
		if werr := json.Unmarshal(raw, &wrapped); werr != nil {
			return nil, err
		}
		list = wrapped.Tickets
		if len(list) == 0 {
			list = wrapped.Selections
		}
	}

	if len(list) == 0 {
		return nil, errors.New("ticket data has no selections")
	}
	return list, nil
}

func (s *SettlementServiceImpl) fallbackSelection(
	ctx context.Context,
	tx pgx.Tx,
	booking *model.Booking,
	event *model.Event,
	data model.WebhookData,
) (model.Selection, error) {
	tags := data.Order.OrderTags

	quantity := 1
	if q, err := strconv.Atoi(strings.TrimSpace(tags[TagQuantity])); err == nil && q > 0 {
		quantity = q
	}

	// booking.package_id -> order_tags.package_id -> 活動第一個 package；無法對應的 id 直接跳過
	packageID := 0
	if booking.PackageID != nil {
		if _, ok := event.FindPackage(*booking.PackageID); ok {
			packageID = *booking.PackageID
		}
	}
	if packageID == 0 {
		if id, err := strconv.Atoi(strings.TrimSpace(tags[TagPackageID])); err == nil {
			if _, ok := event.FindPackage(id); ok {
				packageID = id
			}
		}
	}
	if packageID == 0 && len(event.Packages) > 0 {
		packageID = event.Packages[0].ID
	}

	name := strings.TrimSpace(data.CustomerDetails.CustomerName)
	phone := strings.TrimSpace(data.CustomerDetails.CustomerPhone)
	if name == "" || phone == "" {
		buyer, err := s.repos.Users.FindByIDTx(ctx, tx, booking.UserID)
		if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			return model.Selection{}, err
		}
		if buyer != nil {
			if name == "" {
				name = buyer.Name
			}
			if phone == "" && buyer.Phone != nil {
				phone = *buyer.Phone
			}
		}
	}

	name = truncateRunes(name, model.MaxHolderNameLength)
	phone = truncateRunes(phone, model.MaxHolderPhoneLength)

	holders := make([]model.Holder, quantity)
	for i := range holders {
		holders[i] = model.Holder{Name: name, Age: s.cfg.DefaultHolderAge, Phone: phone}
	}

	return model.Selection{PackageID: packageID, Quantity: quantity, Holders: holders}, nil
}

// priceLines 驗證每個選購行並計算費用；不合格的行記錄在 result 並略過
func (s *SettlementServiceImpl) priceLines(
	event *model.Event,
	pct fee.Percentages,
	selections []model.Selection,
	result *model.SettlementResult,
	log *zap.Logger,
) []lineResult {
	lines := make([]lineResult, 0, len(selections))
	for i, sel := range selections {
		reason := ""
		pkg, ok := event.FindPackage(sel.PackageID)
		switch {
		case !ok:
			reason = "unknown package"
		case sel.Quantity <= 0:
			reason = "invalid quantity"
		case !holdersComplete(sel):
			reason = "missing holder name"
		case !holdersFit(sel):
			reason = "invalid holder"
		}

		var breakdown fee.Breakdown
		if reason == "" {
			var err error
			if breakdown, err = fee.Calculate(pkg.Price, pct); err != nil {
				reason = err.Error()
			}
		}

		if reason != "" {
			log.Warn("skipping selection line",
				zap.Int("line", i),
				zap.Int("package_id", sel.PackageID),
				zap.String("reason", reason),
			)
			if result != nil {
				result.SkippedLines = append(result.SkippedLines, model.SkippedLine{
					Line:      i,
					PackageID: sel.PackageID,
					Reason:    reason,
				})
			}
			continue
		}

		lines = append(lines, lineResult{pkg: pkg, quantity: sel.Quantity, holders: sel.Holders, breakdown: breakdown})
	}
	return lines
}

func holdersComplete(sel model.Selection) bool {
	if len(sel.Holders) < sel.Quantity {
		return false
	}
	for i := 0; i < sel.Quantity; i++ {
		if strings.TrimSpace(sel.Holders[i].Name) == "" {
			return false
		}
	}
	return true
}

// holdersFit 檢查持票人欄位不超過 tickets 表的欄位長度
func holdersFit(sel model.Selection) bool {
	for i := 0; i < sel.Quantity; i++ {
		h := sel.Holders[i]
		if utf8.RuneCountInString(strings.TrimSpace(h.Name)) > model.MaxHolderNameLength ||
			utf8.RuneCountInString(strings.TrimSpace(h.Phone)) > model.MaxHolderPhoneLength {
			return false
		}
	}
	return true
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func (s *SettlementServiceImpl) materialize(
	ctx context.Context,
	tx pgx.Tx,
	booking *model.Booking,
	event *model.Event,
	pct fee.Percentages,
	selections []model.Selection,
	result *model.SettlementResult,
	log *zap.Logger,
) ([]lineResult, error) {
	lines := s.priceLines(event, pct, selections, result, log)

	for _, line := range lines {
		price := fee.Round(line.breakdown.TicketPrice)
		for i := 0; i < line.quantity; i++ {
			holder := line.holders[i]
			age := holder.Age
			if age <= 0 {
				age = s.cfg.DefaultHolderAge
			}

			number, err := newTicketNumber()
			if err != nil {
				return nil, err
			}

			ticket := &model.Ticket{
				TicketNumber: number,
				QRCode:       newQRPayload(booking.ID, number),
				HolderName:   strings.TrimSpace(holder.Name),
				HolderAge:    age,
				HolderPhone:  strings.TrimSpace(holder.Phone),
				Price:        price,
				EventID:      event.ID,
				PackageID:    line.pkg.ID,
				BookingID:    booking.ID,
				UserID:       booking.UserID,
			}
			if _, err := s.repos.Tickets.Create(ctx, tx, ticket); err != nil {
				return nil, err
			}
			result.TicketsCreated++
		}
	}

	return lines, nil
}

func newTicketNumber() (string, error) {
	code, err := utils.GenerateCode(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), code), nil
}

// newQRPayload 掃碼驗票用，含 booking、票號與隨機 salt
func newQRPayload(bookingID int, ticketNumber string) string {
	return fmt.Sprintf("MOLLE:%d:%s:%s", bookingID, ticketNumber, uuid.NewString())
}

type walletSplit struct {
	hostGets       decimal.Decimal
	adminGets      decimal.Decimal
	referralAmount decimal.Decimal
}

// splitFromTags 結帳時預先算好的金額；host_gets 與 admin_gets 缺一即不採用
func splitFromTags(tags map[string]string) (walletSplit, bool) {
	host, err := decimal.NewFromString(strings.TrimSpace(tags[TagHostGets]))
	if err != nil {
		return walletSplit{}, false
	}
	admin, err := decimal.NewFromString(strings.TrimSpace(tags[TagAdminGets]))
	if err != nil {
		return walletSplit{}, false
	}
	referral := decimal.Zero
	if raw := strings.TrimSpace(tags[TagReferralAmount]); raw != "" {
		if referral, err = decimal.NewFromString(raw); err != nil {
			return walletSplit{}, false
		}
	}
	if host.IsNegative() || admin.IsNegative() || referral.IsNegative() {
		return walletSplit{}, false
	}
	return walletSplit{hostGets: host, adminGets: admin, referralAmount: referral}, true
}

func splitFromLines(lines []lineResult) walletSplit {
	var total fee.Breakdown
	for _, l := range lines {
		total = total.Add(l.breakdown.Times(l.quantity))
	}
	return walletSplit{
		hostGets:       fee.Round(total.HostGets),
		adminGets:      fee.Round(total.AdminGets),
		referralAmount: fee.Round(total.ReferralAmount),
	}
}

func (s *SettlementServiceImpl) creditWallets(
	ctx context.Context,
	tx pgx.Tx,
	booking *model.Booking,
	event *model.Event,
	lines []lineResult,
	tags map[string]string,
	log *zap.Logger,
) ([]model.WalletCredit, error) {
	split, ok := splitFromTags(tags)
	if !ok {
		split = splitFromLines(lines)
	}

	treasury, err := s.treasury(ctx, tx, log)
	if err != nil {
		return nil, err
	}

	targets := []model.WalletCredit{
		{UserID: event.HostID, Party: model.WalletPartyHost, Amount: split.hostGets},
		{UserID: treasury.ID, Party: model.WalletPartyAdmin, Amount: split.adminGets},
	}
	if booking.ReferrerID != nil {
		targets = append(targets, model.WalletCredit{UserID: *booking.ReferrerID, Party: model.WalletPartyReferrer, Amount: split.referralAmount})
	}

	credits := make([]model.WalletCredit, 0, len(targets))
	for _, c := range targets {
		if !c.Amount.IsPositive() {
			continue
		}

		recorded, err := s.repos.Wallets.Record(ctx, tx, &model.WalletTransaction{
			UserID:    c.UserID,
			BookingID: booking.ID,
			Party:     c.Party,
			Amount:    c.Amount,
		})
		if err != nil {
			return nil, err
		}
		if !recorded {
			log.Warn("wallet already credited for booking", zap.Int("booking_id", booking.ID), zap.String("party", string(c.Party)))
			continue
		}

		if err := s.repos.Users.CreditWallet(ctx, tx, c.UserID, c.Amount); err != nil {
			return nil, fmt.Errorf("credit %s wallet: %w", c.Party, err)
		}
		credits = append(credits, c)
	}

	return credits, nil
}

// treasury 平台收益帳戶：優先使用設定的帳戶，否則 id 最小的 ADMIN
func (s *SettlementServiceImpl) treasury(ctx context.Context, tx pgx.Tx, log *zap.Logger) (*model.User, error) {
	if s.cfg.TreasuryUserID > 0 {
		u, err := s.repos.Users.FindByIDTx(ctx, tx, s.cfg.TreasuryUserID)
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrTreasuryNotConfigured, s.cfg.TreasuryUserID)
		}
		return u, err
	}

	log.Warn("TREASURY_USER_ID not set, crediting lowest-id admin")
	u, err := s.repos.Users.FindFirstAdmin(ctx, tx)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrTreasuryNotConfigured
	}
	return u, err
}

func (s *SettlementServiceImpl) Credits(ctx context.Context, orderID string) ([]*model.WalletTransaction, error) {
	booking, err := s.repos.Bookings.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.repos.Wallets.ListByBookingID(ctx, booking.ID)
}
