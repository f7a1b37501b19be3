package shared

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/feedback"
	"courtbook/internal/domain/playmate"
	"courtbook/internal/domain/slot"
	"courtbook/internal/domain/wallet"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Wallets() WalletRepository
	Feedback() FeedbackRepository
	PlaymatePosts() PlaymatePostRepository
	Users() UserRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CourtByID(ctx context.Context, id uuid.UUID) (*CourtSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	VoucherByCode(ctx context.Context, code string) (*VoucherSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookingByOrderCode(ctx context.Context, orderCode int64) (*BookingSnapshot, error)
	FeedbackByBookingID(ctx context.Context, bookingID uuid.UUID) (*FeedbackSnapshot, error)
	PlaymatePostByBookingID(ctx context.Context, bookingID uuid.UUID) (*PlaymatePostSnapshot, error)
	PlaymatePostByID(ctx context.Context, id uuid.UUID) (*PlaymatePostSnapshot, error)
	WalletByUserID(ctx context.Context, userID uuid.UUID) (*WalletSnapshot, error)
}

// Minimal snapshots for command-side reads (CQRS separation: the write side
// never depends on read-model view types).

type CourtSnapshot struct {
	ID           uuid.UUID
	Name         string
	PricePerHour int64
	IsActive     bool
}

type SlotSnapshot struct {
	ID          uuid.UUID
	CourtID     uuid.UUID
	SlotDate    time.Time
	SlotNumber  int
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
}

type VoucherSnapshot struct {
	ID              uuid.UUID
	Code            string
	DiscountPercent int
	ValidFrom       *time.Time
	ValidTo         *time.Time
	IsActive        bool
}

type BookingSnapshot struct {
	ID            uuid.UUID
	CourtID       uuid.UUID
	SlotID        uuid.UUID
	UserID        uuid.UUID
	Status        booking.Status
	PaymentMethod booking.PaymentMethod
	Amount        int64
	PayableAmount int64
	SlotDate      time.Time
	SlotStart     time.Time
	SlotEnd       time.Time
}

type FeedbackSnapshot struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	UserID    uuid.UUID
}

type PlaymatePostSnapshot struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	UserID    uuid.UUID
	Status    playmate.Status
}

type WalletSnapshot struct {
	UserID  uuid.UUID
	Balance int64
}

type SlotRepository interface {
	CreateBatch(ctx context.Context, dbtx db.DBTX, slots []*slot.Slot) error
	// Reserve flips is_available false only when currently true; the returned
	// bool reports whether this call won the slot.
	Reserve(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID) (bool, error)
	// Release is the idempotent revert back to available.
	Release(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID) error
	SetAvailability(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID, available bool) (int64, error)
	CountOverlapping(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, start, end time.Time) (int, error)
	MaxSlotNumber(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, date time.Time) (int, error)
}

type BookingRepository interface {
	// Create persists the booking and returns its generated gateway order code.
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error)
	SetPaymentLink(ctx context.Context, dbtx db.DBTX, id uuid.UUID, link string) error
	// TransitionStatus updates only when the current status matches from,
	// returning the number of rows changed.
	TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error)
	// PromoteEndedToDone flips confirmed bookings whose slot end has passed.
	PromoteEndedToDone(ctx context.Context, dbtx db.DBTX, now time.Time) (int64, error)
	// ExpireStalePending cancels gateway bookings stuck pending since before
	// cutoff and returns the slot IDs they held.
	ExpireStalePending(ctx context.Context, dbtx db.DBTX, cutoff time.Time) ([]uuid.UUID, error)
}

type WalletRepository interface {
	// DebitIfSufficient debits atomically; false means the balance was too low.
	DebitIfSufficient(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount int64) (bool, error)
	Credit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount int64) error
	RecordTransaction(ctx context.Context, dbtx db.DBTX, t *wallet.Transaction) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, f *feedback.Feedback) error
	Update(ctx context.Context, dbtx db.DBTX, f *feedback.Feedback) error
}

type PlaymatePostRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *playmate.Post) error
	Update(ctx context.Context, dbtx db.DBTX, p *playmate.Post) error
	SetStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status playmate.Status) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

type OutboxRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
