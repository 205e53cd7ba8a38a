package service

import (
	"context"
	"fmt"
	"strings"

	"molle-settlement/internal/fee"
	"molle-settlement/internal/model"
	"molle-settlement/internal/repository"
	apperrors "molle-settlement/pkg/app_errors"
)

type TicketService interface {
	// VerifyByQR 依 QR 內容找出票券，並以目前費率重新計算應付票價
	VerifyByQR(ctx context.Context, qrCode string) (*model.TicketVerification, error)
	ListByOrderID(ctx context.Context, orderID string) ([]*model.Ticket, error)
}

type TicketServiceImpl struct {
	ticketRepo  repository.TicketRepository
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
	fees        FeeService
}

func NewTicketService(
	ticketRepo repository.TicketRepository,
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	fees FeeService,
) TicketService {
	return &TicketServiceImpl{
		ticketRepo:  ticketRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		fees:        fees,
	}
}

func (s *TicketServiceImpl) VerifyByQR(ctx context.Context, qrCode string) (*model.TicketVerification, error) {
	qrCode = strings.TrimSpace(qrCode)
	if qrCode == "" {
		return nil, fmt.Errorf("%w: qr code is required", apperrors.ErrInvalidInput)
	}

	ticket, err := s.ticketRepo.FindByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, ticket.EventID)
	if err != nil {
		return nil, err
	}
	pkg, ok := event.FindPackage(ticket.PackageID)
	if !ok {
		return nil, apperrors.ErrPackageNotFound
	}
	host, err := s.userRepo.FindByID(ctx, event.HostID)
	if err != nil {
		return nil, err
	}

	// 推薦分潤只影響主辦方收入，不影響買家票價
	pct, err := s.fees.ResolvePercentages(ctx, host, false)
	if err != nil {
		return nil, err
	}
	breakdown, err := fee.Calculate(pkg.Price, pct)
	if err != nil {
		return nil, err
	}

	expected := fee.Round(breakdown.TicketPrice)
	return &model.TicketVerification{
		Ticket:        ticket,
		ExpectedPrice: expected,
		PriceMatches:  expected.Equal(ticket.Price),
	}, nil
}

func (s *TicketServiceImpl) ListByOrderID(ctx context.Context, orderID string) ([]*model.Ticket, error) {
	booking, err := s.bookingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.ticketRepo.ListByBookingID(ctx, booking.ID)
}
