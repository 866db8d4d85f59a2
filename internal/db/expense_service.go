package db

import (
	"fmt"
	"strings"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/models"
)

// AddExpense records an independent ledger entry. Date is in storage
// form.
func AddExpense(description string, amount float64, date string) (*models.Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("expense description is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("expense amount must not be negative")
	}
	if !dates.ValidStorage(date) {
		return nil, fmt.Errorf("invalid expense date %q", date)
	}

	expense := models.Expense{
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Date:        date,
	}
	if err := DB.Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetExpensesByPeriod lists expenses inside [start, end], newest first
func GetExpensesByPeriod(start, end string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := DB.Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// DeleteExpense removes one ledger entry
func DeleteExpense(id uint) error {
	result := DB.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("expense #%d: %w", id, ErrNotFound)
	}
	return nil
}
