package shell

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/shoestock/internal/inventory"
	"github.com/roach88/shoestock/internal/report"
)

const noShoes = "There are no shoes in the inventory."

// capture prompts for a new record and appends it to the store. Numeric
// fields are re-prompted until they validate. The record is not written to
// the inventory file.
func (s *Shell) capture(ctx context.Context) error {
	country, err := s.prompt(ctx, "Enter the country of the shoe: ")
	if err != nil {
		return err
	}
	code, err := s.prompt(ctx, "Enter the code of the shoe: ")
	if err != nil {
		return err
	}
	product, err := s.prompt(ctx, "Enter the shoe name: ")
	if err != nil {
		return err
	}
	cost, err := s.promptValid(ctx, "Enter the cost of the shoe: ", func(in string) error {
		_, err := inventory.ParseCost(in)
		return err
	})
	if err != nil {
		return err
	}
	quantity, err := s.promptValid(ctx, "Enter the quantity of the shoe: ", func(in string) error {
		_, err := inventory.ParseQuantity(in)
		return err
	})
	if err != nil {
		return err
	}

	record, err := inventory.NewManualRecord(country, code, product, cost, quantity)
	if err != nil {
		return err
	}
	s.tracker.Store().Add(record)
	s.log.Debug("record captured", zap.String("code", record.Code))
	s.println("Shoe successfully added.")
	return nil
}

// promptValid repeats a prompt until validate accepts the input. Only
// *inventory.InvalidNumberError triggers a retry; input errors end it.
func (s *Shell) promptValid(ctx context.Context, text string, validate func(string) error) (string, error) {
	for {
		in, err := s.prompt(ctx, text)
		if err != nil {
			return "", err
		}
		err = validate(in)
		if err == nil {
			return in, nil
		}
		var numErr *inventory.InvalidNumberError
		if !errors.As(err, &numErr) {
			return "", err
		}
		s.printf("Invalid %s: %q is %s. Please try again.\n", numErr.Field, numErr.Input, describe(numErr.Kind))
	}
}

func describe(kind inventory.NumberKind) string {
	if kind == inventory.KindNegative {
		return "negative"
	}
	return "not a valid number"
}

func (s *Shell) viewAll() error {
	return report.WriteTable(s.out, s.tracker.Store().Records())
}

// restock offers to add stock to the record with the lowest quantity.
func (s *Shell) restock(ctx context.Context) error {
	record, ok := s.tracker.Store().FindMinQuantity()
	if !ok {
		s.println(noShoes)
		return nil
	}

	s.printf("The shoe with the lowest quantity is %s with %d units in stock.\n", record.Product, record.Quantity)
	answer, err := s.prompt(ctx, "Would you like to add stock for this shoe? (y/n) ")
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		return nil
	}

	amountText, err := s.promptValid(ctx, "Enter the number of shoes to add to stock: ", func(in string) error {
		_, err := inventory.ParseAmount(in)
		return err
	})
	if err != nil {
		return err
	}
	amount, err := inventory.ParseAmount(amountText)
	if err != nil {
		return err
	}

	if _, err := s.tracker.Restock(ctx, record, amount); err != nil {
		s.log.Error("restock failed", zap.String("code", record.Code), zap.Error(err))
		s.printf("Failed to restock %s: %v\n", record.Product, err)
		return nil
	}
	s.printf("%d %s added to stock.\n", amount, record.Product)
	return nil
}

func (s *Shell) search(ctx context.Context) error {
	code, err := s.prompt(ctx, "Please enter the product code of the shoe you wish to search: ")
	if err != nil {
		return err
	}
	code = strings.TrimSpace(code)

	record, ok := s.tracker.Store().FindByCode(code)
	if !ok {
		s.printf("No shoe found with code %s.\n", code)
		return nil
	}
	s.println(record.String())
	return nil
}

func (s *Shell) valuePerItem() error {
	return report.WriteValues(s.out, s.tracker.Store().Records())
}

func (s *Shell) highest() error {
	record, ok := s.tracker.Store().FindMaxQuantity()
	if !ok {
		s.println(noShoes)
		return nil
	}
	s.printf("The shoe with the highest quantity is %s with %d units and it's on sale.\n", record.Product, record.Quantity)
	return nil
}
