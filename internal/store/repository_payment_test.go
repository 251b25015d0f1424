package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

func newTestPaymentRepo(t *testing.T) (*paymentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &paymentRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestRecordPayment_Success(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	payment := models.Payment{
		RequestID: 11,
		Amount:    75.00,
		ReceiptNo: "OR-2026-000431",
		PayerName: "Juan Dela Cruz",
		Status:    models.PaymentPaid,
		OfficerID: 3,
	}

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(payment.RequestID, payment.Amount, payment.ReceiptNo, payment.PayerName, string(payment.Status), payment.OfficerID).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "created_at"}).AddRow(int64(21), now))
	mock.ExpectQuery("WITH target_request").
		WithArgs(payment.RequestID, string(models.StatusForPayment), string(models.StatusProcessing), payment.OfficerID).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(int64(11), "ForPayment"))
	mock.ExpectCommit()

	if err := repo.RecordPayment(context.Background(), &payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.PaymentID != 21 {
		t.Errorf("expected PaymentID=21, got %d", payment.PaymentID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordPayment_DuplicateReceipt(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	payment := models.Payment{RequestID: 11, ReceiptNo: "OR-2026-000431", Status: models.PaymentPaid, OfficerID: 3}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.RecordPayment(context.Background(), &payment)
	if !errors.Is(err, ErrDuplicateReceipt) {
		t.Fatalf("expected ErrDuplicateReceipt, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordPayment_RequestNotPayable(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	payment := models.Payment{RequestID: 11, ReceiptNo: "OR-2026-000431", Status: models.PaymentPaid, OfficerID: 3}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "created_at"}).AddRow(int64(21), time.Now()))
	mock.ExpectQuery("WITH target_request").
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(nil, "Pending"))
	mock.ExpectRollback()

	err := repo.RecordPayment(context.Background(), &payment)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordPayment_RequestNotFound(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	payment := models.Payment{RequestID: 404, ReceiptNo: "OR-2026-000431", Status: models.PaymentPaid, OfficerID: 3}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "created_at"}).AddRow(int64(21), time.Now()))
	mock.ExpectQuery("WITH target_request").
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(nil, nil))
	mock.ExpectRollback()

	err := repo.RecordPayment(context.Background(), &payment)
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestMarkRefunded_Success(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("WITH target_payment").
		WithArgs(int64(21), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(int64(11), "Paid"))
	mock.ExpectQuery("WITH target_request").
		WithArgs(int64(11), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(int64(11), "Processing"))
	mock.ExpectCommit()

	if err := repo.MarkRefunded(context.Background(), 21, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkRefunded_AlreadyRefunded(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("WITH target_payment").
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(nil, "Refunded"))
	mock.ExpectRollback()

	err := repo.MarkRefunded(context.Background(), 21, 3)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestMarkRefunded_PaymentNotFound(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("WITH target_payment").
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "status"}).AddRow(nil, nil))
	mock.ExpectRollback()

	err := repo.MarkRefunded(context.Background(), 404, 3)
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestListPaymentsByRequest(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"payment_id", "request_id", "amount", "receipt_no", "payer_name", "status", "officer_id", "created_at"}).
		AddRow(int64(22), int64(11), 0.0, "EXEMPT-REQ-20260831-4F2A", "Juan Dela Cruz", "Exempted", int64(3), time.Now()).
		AddRow(int64(21), int64(11), 75.0, "OR-2026-000431", "Juan Dela Cruz", "Refunded", int64(3), time.Now())

	mock.ExpectQuery("SELECT payment_id").
		WithArgs(int64(11)).
		WillReturnRows(rows)

	got, err := repo.ListPaymentsByRequest(context.Background(), 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(got))
	}
	if got[1].Status != models.PaymentRefunded {
		t.Errorf("expected refunded entry to stay in the ledger, got %s", got[1].Status)
	}
}

func TestListPayments_DefaultsLimit(t *testing.T) {
	repo, mock, db := newTestPaymentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payment_id").
		WithArgs(uint64(defaultListLimit), uint64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "request_id", "amount", "receipt_no", "payer_name", "status", "officer_id", "created_at"}))

	if _, err := repo.ListPayments(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
