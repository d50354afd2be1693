package repository

import (
	"time"

	"go-repair-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, trx *model.Transaction) error
	FindAll(filter model.TransactionFilter) ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	UpdateStatus(id uuid.UUID, status model.TransactionStatus, notes string) error
	GetDashboardStats() (*DashboardStats, error)
	GetDailyReport(startDate, endDate time.Time) ([]DailyReportRow, error)
}

// RecentTransaction is the trimmed row shown on the dashboard.
type RecentTransaction struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Total         float64   `json:"total"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalSales         float64             `json:"totalSales"`
	TotalTransactions  int64               `json:"totalTransactions"`
	TotalStock         int64               `json:"totalStock"`
	TotalProducts      int64               `json:"totalProducts"`
	TotalServices      int64               `json:"totalServices"`
	UniqueCustomers    int64               `json:"uniqueCustomers"`
	LowStockProducts   []model.Product     `json:"lowStockProducts"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
}

// DailyReportRow untuk chart data
type DailyReportRow struct {
	ReportDate        string  `json:"reportDate"`
	DailySales        float64 `json:"dailySales"`
	DailyTransactions int64   `json:"dailyTransactions"`
}

// LowStockThreshold marks products that need restocking.
const LowStockThreshold = 10

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create inserts the transaction and its item snapshots inside the caller's
// transaction.
func (r *transactionRepo) Create(tx *gorm.DB, trx *model.Transaction) error {
	return tx.Create(trx).Error
}

func (r *transactionRepo) FindAll(filter model.TransactionFilter) ([]model.Transaction, error) {
	var transactions []model.Transaction
	query := r.db.Preload("Customer").Preload("Items").Order("created_at DESC")
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	err := query.Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Customer").Preload("Items").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) UpdateStatus(id uuid.UUID, status model.TransactionStatus, notes string) error {
	return r.db.Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
			"notes":  notes,
		}).Error
}

func (r *transactionRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	// Total sales + transaction count
	row := struct {
		TotalSales        float64
		TotalTransactions int64
	}{}
	if err := r.db.Model(&model.Transaction{}).
		Select("COALESCE(SUM(total), 0) as total_sales, COUNT(*) as total_transactions").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	stats.TotalSales = row.TotalSales
	stats.TotalTransactions = row.TotalTransactions

	// Stock totals
	r.db.Model(&model.Product{}).Count(&stats.TotalProducts)
	r.db.Model(&model.Product{}).Select("COALESCE(SUM(stock), 0)").Scan(&stats.TotalStock)

	// Service count
	r.db.Model(&model.Service{}).Count(&stats.TotalServices)

	// Distinct customers that actually bought something
	r.db.Model(&model.Transaction{}).Distinct("customer_id").Count(&stats.UniqueCustomers)

	// Low stock products, most urgent first
	if err := r.db.Where("stock <= ?", LowStockThreshold).
		Order("stock ASC").
		Find(&stats.LowStockProducts).Error; err != nil {
		return nil, err
	}

	// 5 most recent transactions with the customer joined in
	if err := r.db.Model(&model.Transaction{}).
		Select("transactions.id, customers.name as customer_name, customers.phone as customer_phone, transactions.total, transactions.type, transactions.status, transactions.created_at").
		Joins("LEFT JOIN customers ON customers.id = transactions.customer_id").
		Order("transactions.created_at DESC").
		Limit(5).
		Scan(&stats.RecentTransactions).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *transactionRepo) GetDailyReport(startDate, endDate time.Time) ([]DailyReportRow, error) {
	var results []DailyReportRow

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as report_date,
			COALESCE(SUM(total), 0) as daily_sales,
			COUNT(id) as daily_transactions
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("report_date DESC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day time.Time
		var data DailyReportRow
		if err := rows.Scan(&day, &data.DailySales, &data.DailyTransactions); err != nil {
			return nil, err
		}
		data.ReportDate = day.Format("2006-01-02")
		results = append(results, data)
	}

	return results, nil
}
