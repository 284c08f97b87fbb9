package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/shared"
)

// PaymentAdd records a payment from an artist. Amounts accept Brazilian
// formatting ("R$ 150,00") as well as plain numbers.
func (r *Runner) PaymentAdd(ctx context.Context, cmd *cli.Command) error {
	artistID := cmd.StringArg("artist")
	rawAmount := cmd.StringArg("amount")
	if artistID == "" || rawAmount == "" {
		return fmt.Errorf("%w: artist id and amount are required", shared.ErrMissingArgument)
	}

	amount := shared.ParseAmount(rawAmount)
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %q", shared.ErrInvalidArgument, rawAmount)
	}

	// Payments for ids missing from the roster would never surface in the
	// summary rollup.
	artist, err := r.artists.Get(artistID)
	if err != nil {
		return err
	}

	record, err := r.ledger.Add(artist.ID, amount)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	r.logger.Info("payment recorded", "artist", artistID, "amount", record.Amount, "id", record.ID)
	return r.writePlainln("✓ %s paid %s (payment %s)", artistID, shared.FormatBRL(record.Amount), record.ID)
}

// PaymentList prints the payments recorded for an artist, plus their total.
func (r *Runner) PaymentList(ctx context.Context, cmd *cli.Command) error {
	artistID := cmd.StringArg("artist")
	if artistID == "" {
		return fmt.Errorf("%w: artist id is required", shared.ErrMissingArgument)
	}

	records, err := r.ledger.List(artistID)
	if err != nil {
		return fmt.Errorf("failed to list payments: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, cmd.Bool("pretty"))
	}

	if len(records) == 0 {
		return r.writePlainln("No payments recorded for %s.", artistID)
	}

	var total float64
	for _, rec := range records {
		total += rec.Amount
		if err := r.writePlainln("%s  %10s  %s", rec.Date.Format("2006-01-02"), shared.FormatBRL(rec.Amount), rec.ID); err != nil {
			return err
		}
	}

	return r.writePlainln("Total: %s", shared.FormatBRL(total))
}

// PaymentRemove deletes a single payment record from an artist's ledger.
func (r *Runner) PaymentRemove(ctx context.Context, cmd *cli.Command) error {
	artistID := cmd.StringArg("artist")
	paymentID := cmd.StringArg("id")
	if artistID == "" || paymentID == "" {
		return fmt.Errorf("%w: artist id and payment id are required", shared.ErrMissingArgument)
	}

	if err := r.ledger.Remove(artistID, paymentID); err != nil {
		return fmt.Errorf("failed to remove payment: %w", err)
	}

	r.logger.Info("payment removed", "artist", artistID, "id", paymentID)
	return r.writePlainln("✓ removed payment %s", paymentID)
}
