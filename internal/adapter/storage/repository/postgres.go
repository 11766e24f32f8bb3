package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopkart/fulfillment/internal/adapter/storage"
	"github.com/shopkart/fulfillment/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.Insert("products").
		Columns("name", "price", "stock", "weight_grams").
		Values(product.Name, product.Price, product.Stock, product.WeightGrams).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.ID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price", "stock", "weight_grams").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Stock,
		&product.WeightGrams,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price", "stock", "weight_grams").
		From("products").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Stock,
			&product.WeightGrams,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("number", "status", "total_amount",
				"ship_name", "ship_line", "ship_city", "ship_state",
				"ship_country", "ship_pin", "ship_phone", "created_at").
			Values(order.Number, order.Status, order.TotalAmount,
				order.Address.Name, order.Address.Line, order.Address.City,
				order.Address.State, order.Address.Country, order.Address.Pin,
				order.Address.Phone, order.CreatedAt).
			Suffix("returning id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&(order.ID))
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "quantity", "price").
				Values(order.ID, item.ProductID, item.Quantity, item.Price)

			sql, args, err = itemSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, sq.Eq{"id": orderID})
}

func (r *Repository) ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.readOrder(ctx, sq.Eq{"number": number})
}

func (r *Repository) readOrder(ctx context.Context, where sq.Eq) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "number", "status", "total_amount",
			"ship_name", "ship_line", "ship_city", "ship_state",
			"ship_country", "ship_pin", "ship_phone", "waybill", "created_at").
		From("orders").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Number,
		&order.Status,
		&order.TotalAmount,
		&order.Address.Name,
		&order.Address.Line,
		&order.Address.City,
		&order.Address.State,
		&order.Address.Country,
		&order.Address.Pin,
		&order.Address.Phone,
		&order.Waybill,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := r.readOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *Repository) readOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("product_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListUnshippedOrders is the reconciliation report source: confirmed orders
// whose shipment never got dispatched.
func (r *Repository) ListUnshippedOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "number", "status", "total_amount",
			"ship_name", "ship_line", "ship_city", "ship_state",
			"ship_country", "ship_pin", "ship_phone", "waybill", "created_at").
		From("orders").
		Where(sq.Eq{"status": domain.OrderStatusConfirmed, "waybill": ""}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.Status,
			&order.TotalAmount,
			&order.Address.Name,
			&order.Address.Line,
			&order.Address.City,
			&order.Address.State,
			&order.Address.Country,
			&order.Address.Pin,
			&order.Address.Phone,
			&order.Waybill,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	return list, rows.Err()
}

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.Insert("payments").
		Columns("order_id", "transaction_id", "status", "method", "created_at").
		Values(payment.OrderID, payment.TransactionID, payment.Status,
			payment.Method, payment.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&payment.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return payment, nil
}

// ReadPayment looks a payment up by its binding key (orderID, transactionID).
// Multiple attempts may exist per order; the first match by id wins.
func (r *Repository) ReadPayment(ctx context.Context, orderID uint64, transactionID string) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "transaction_id", "gateway_payment_id",
			"status", "method", "gateway_response", "paid_at", "created_at").
		From("payments").
		Where(sq.Eq{"order_id": orderID, "transaction_id": transactionID}).
		OrderBy("id").
		Limit(1)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.TransactionID,
		&payment.GatewayPaymentID,
		&payment.Status,
		&payment.Method,
		&payment.GatewayResponse,
		&payment.PaidAt,
		&payment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// ReadCompletedPayment finds the completed payment for an order, used by the
// refund path where no gateway identifiers are at hand.
func (r *Repository) ReadCompletedPayment(ctx context.Context, orderID uint64) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "transaction_id", "gateway_payment_id",
			"status", "method", "gateway_response", "paid_at", "created_at").
		From("payments").
		Where(sq.Eq{"order_id": orderID, "status": domain.PaymentStatusCompleted}).
		OrderBy("id").
		Limit(1)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.TransactionID,
		&payment.GatewayPaymentID,
		&payment.Status,
		&payment.Method,
		&payment.GatewayResponse,
		&payment.PaidAt,
		&payment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// ConfirmOrderPayment commits the whole confirmation as one unit: payment
// COMPLETED, order CONFIRMED, stock decremented for every item, shipment
// task enqueued. Stock decrements are conditional (stock >= quantity), so a
// sold-out item rolls the whole transaction back and no partial decrement
// can survive.
func (r *Repository) ConfirmOrderPayment(ctx context.Context, orderID uint64, paymentID uint64,
	gatewayPaymentID string, gatewayResponse []byte) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		paymentSt := r.db.QueryBuilder.
			Update("payments").
			Set("status", domain.PaymentStatusCompleted).
			Set("gateway_payment_id", gatewayPaymentID).
			Set("gateway_response", gatewayResponse).
			Set("paid_at", time.Now()).
			Where(sq.Eq{"id": paymentID, "status": domain.PaymentStatusPending})

		sql, args, err := paymentSt.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			// Lost the race against a concurrent verification.
			return domain.ErrPaymentNotPending
		}

		orderSt := r.db.QueryBuilder.
			Update("orders").
			Set("status", domain.OrderStatusConfirmed).
			Where(sq.Eq{"id": orderID, "status": domain.OrderStatusPending})

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}

		ct, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			// Order already left PENDING via another attempt. Rolling back
			// keeps a second attempt from decrementing stock twice.
			return domain.ErrPaymentNotPending
		}

		items, err := r.readOrderItems(ctx, orderID)
		if err != nil {
			return err
		}

		for _, item := range items {
			stockSt := r.db.QueryBuilder.
				Update("products").
				Set("stock", sq.Expr("stock - ?", item.Quantity)).
				Where(sq.Eq{"id": item.ProductID}).
				Where(sq.Expr("stock >= ?", item.Quantity))

			sql, args, err = stockSt.ToSql()
			if err != nil {
				return err
			}

			ct, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if ct.RowsAffected() == 0 {
				return domain.ErrInsufficientStock
			}
		}

		taskSt := r.db.QueryBuilder.
			Insert("shipment_tasks").
			Columns("order_id", "status", "next_retry_at", "created_at").
			Values(orderID, domain.ShipmentTaskPending, time.Now(), time.Now()).
			Suffix("on conflict (order_id) do nothing")

		sql, args, err = taskSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

func (r *Repository) FailOrderPayment(ctx context.Context, orderID uint64, paymentID uint64) error {
	return r.moveOrderPayment(ctx, orderID, paymentID,
		domain.PaymentStatusPending, domain.PaymentStatusFailed,
		domain.OrderStatusPending, domain.OrderStatusFailed)
}

func (r *Repository) RefundOrderPayment(ctx context.Context, orderID uint64, paymentID uint64) error {
	return r.moveOrderPayment(ctx, orderID, paymentID,
		domain.PaymentStatusCompleted, domain.PaymentStatusRefunded,
		domain.OrderStatusConfirmed, domain.OrderStatusRefunded)
}

// moveOrderPayment applies a payment and order transition in one transaction.
// Both updates are guarded by the expected current status: a row another
// attempt already moved matches zero rows and stays put, so a CONFIRMED order
// can never be demoted by a stale payment attempt.
func (r *Repository) moveOrderPayment(ctx context.Context, orderID uint64, paymentID uint64,
	paymentFrom, paymentTo domain.PaymentStatus,
	orderFrom, orderTo domain.OrderStatus) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		paymentSt := r.db.QueryBuilder.
			Update("payments").
			Set("status", paymentTo).
			Where(sq.Eq{"id": paymentID, "status": paymentFrom})

		sql, args, err := paymentSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		orderSt := r.db.QueryBuilder.
			Update("orders").
			Set("status", orderTo).
			Where(sq.Eq{"id": orderID, "status": orderFrom})

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

func (r *Repository) ListPendingShipmentTasks(ctx context.Context, limit int) ([]*domain.ShipmentTask, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "status", "retry_count", "last_error",
			"next_retry_at", "created_at").
		From("shipment_tasks").
		Where(sq.Eq{"status": domain.ShipmentTaskPending}).
		Where(sq.Expr("next_retry_at <= now()")).
		OrderBy("next_retry_at").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ShipmentTask, 0)
	for rows.Next() {
		task := domain.ShipmentTask{}
		err := rows.Scan(
			&task.ID,
			&task.OrderID,
			&task.Status,
			&task.RetryCount,
			&task.LastError,
			&task.NextRetryAt,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &task)
	}

	return list, rows.Err()
}

// MarkShipmentDispatched closes the task and stores the waybill on the order
// in one transaction.
func (r *Repository) MarkShipmentDispatched(ctx context.Context, taskID uint64, waybill string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		taskSt := r.db.QueryBuilder.
			Update("shipment_tasks").
			Set("status", domain.ShipmentTaskDispatched).
			Where(sq.Eq{"id": taskID})

		sql, args, err := taskSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		orderSt := r.db.QueryBuilder.
			Update("orders").
			Set("waybill", waybill).
			Where(sq.Expr("id = (select order_id from shipment_tasks where id = ?)", taskID))

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

func (r *Repository) RescheduleShipmentTask(ctx context.Context, taskID uint64, retryCount int,
	lastError string, nextRetryAt time.Time) error {
	statement := r.db.QueryBuilder.
		Update("shipment_tasks").
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Set("next_retry_at", nextRetryAt).
		Where(sq.Eq{"id": taskID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) MarkShipmentTaskFailed(ctx context.Context, taskID uint64, lastError string) error {
	statement := r.db.QueryBuilder.
		Update("shipment_tasks").
		Set("status", domain.ShipmentTaskFailed).
		Set("last_error", lastError).
		Where(sq.Eq{"id": taskID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
