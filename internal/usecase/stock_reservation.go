package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
)

// 要求数が在庫を超えた。商品名と残数を持ってユーザーへ返す。
type InsufficientStockError struct {
	ProductTitle string
	SizeID       int64
	Requested    int64
	Available    int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (available %d)", e.ProductTitle, e.Available)
}

// StockReservation は在庫の検証・予約・戻しをまとめたエンジン。
// repoはTxの内外どちらのものでも渡せるよう引数で受け取る。
type StockReservation struct {
	log *slog.Logger
}

func NewStockReservation(log *slog.Logger) *StockReservation {
	return &StockReservation{log: log}
}

// Validate は読み取りのみ。最初に足りない行で止まる。
func (e *StockReservation) Validate(ctx context.Context, stocks repo.SizeStockRepository, products repo.ProductRepository, lines []model.CartLine) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("invalid quantity %d for size %d", line.Quantity, line.SizeID)
		}

		stock, err := stocks.FindBySizeID(ctx, line.SizeID)
		if errors.Is(err, repo.ErrNotFound) {
			return e.insufficient(ctx, products, line, 0)
		}
		if err != nil {
			return err
		}

		if line.Quantity > stock.StockQuantity {
			return e.insufficient(ctx, products, line, stock.StockQuantity)
		}
	}
	return nil
}

// Reserve は行ごとにconditional decrementを発行する。
// 途中で失敗した場合、どこまで減らしたかを返すので呼び出し元が補償できる。
func (e *StockReservation) Reserve(ctx context.Context, stocks repo.SizeStockRepository, products repo.ProductRepository, lines []model.CartLine) ([]model.CartLine, error) {
	reserved := make([]model.CartLine, 0, len(lines))

	for _, line := range lines {
		ok, err := stocks.DecreaseStockIfEnough(ctx, line.SizeID, line.Quantity)
		if err != nil {
			return reserved, err
		}
		if !ok {
			available := int64(0)
			if s, serr := stocks.FindBySizeID(ctx, line.SizeID); serr == nil {
				available = s.StockQuantity
			}
			return reserved, e.insufficient(ctx, products, line, available)
		}
		reserved = append(reserved, line)
	}

	return reserved, nil
}

// Restore は予約の補償。課金は起きていないので行単位の失敗はログに残して
// 先へ進み、チェックアウト全体は落とさない。
func (e *StockReservation) Restore(ctx context.Context, stocks repo.SizeStockRepository, lines []model.CartLine) error {
	var firstErr error

	for _, line := range lines {
		if err := stocks.IncreaseStock(ctx, line.SizeID, line.Quantity); err != nil {
			e.log.Error("stock restore failed",
				"size_id", line.SizeID, "quantity", line.Quantity, "err", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (e *StockReservation) insufficient(ctx context.Context, products repo.ProductRepository, line model.CartLine, available int64) error {
	title := fmt.Sprintf("product %d", line.ProductID)
	if p, err := products.FindByID(ctx, line.ProductID); err == nil {
		title = p.Title
	}
	return &InsufficientStockError{
		ProductTitle: title,
		SizeID:       line.SizeID,
		Requested:    line.Quantity,
		Available:    available,
	}
}
