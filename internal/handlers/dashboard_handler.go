// bizpulse/internal/handlers/dashboard_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Bhavinahir07/bizpulse/config"
	"github.com/Bhavinahir07/bizpulse/internal/analytics"
	"github.com/Bhavinahir07/bizpulse/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
)

// dashboardCacheTTL is short on purpose: overdue classification depends
// on wall-clock time and must not go stale for long.
const dashboardCacheTTL = 60 * time.Second

func dashboardCacheKey(ownerID uint) string {
	return fmt.Sprintf("dashboard:%d:report", ownerID)
}

// InvalidateDashboardCache drops the cached report after any customer
// or deal mutation.
func InvalidateDashboardCache(ownerID uint) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, dashboardCacheKey(ownerID)).Err(); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "owner_id", ownerID, "error", err)
	}
}

// loadSnapshot fetches the owner's customers and deals concurrently.
// The report is only built once both loads succeed; the engine never
// sees partial data.
func loadSnapshot(ownerID uint) ([]models.Customer, []models.Deal, error) {
	var (
		customers   []models.Customer
		deals       []models.Deal
		customerErr error
		dealErr     error
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		customerErr = config.DB.Where("owner_id = ?", ownerID).Order("created_at asc").Find(&customers).Error
	}()
	go func() {
		defer wg.Done()
		dealErr = config.DB.
			Joins("JOIN customers ON customers.id = deals.customer_id").
			Where("customers.owner_id = ?", ownerID).
			Preload("Customer").
			Find(&deals).Error
	}()
	wg.Wait()

	if customerErr != nil {
		return nil, nil, customerErr
	}
	if dealErr != nil {
		return nil, nil, dealErr
	}
	return customers, deals, nil
}

// toRecords converts database rows into the engine's boundary types.
// Amounts go back to their decimal-string form because the engine owns
// all defensive parsing.
func toRecords(customers []models.Customer, deals []models.Deal) ([]analytics.CustomerRecord, []analytics.DealRecord) {
	customerRecords := make([]analytics.CustomerRecord, 0, len(customers))
	for _, c := range customers {
		customerRecords = append(customerRecords, analytics.CustomerRecord{ID: c.ID, Name: c.Name})
	}

	dealRecords := make([]analytics.DealRecord, 0, len(deals))
	for _, d := range deals {
		record := analytics.DealRecord{
			ID:          d.ID,
			Description: d.Description,
			Amount:      strconv.FormatFloat(d.Amount, 'f', 2, 64),
			DueDate:     d.DueDate.Format("2006-01-02"),
			Status:      d.Status,
		}
		if d.Customer != nil {
			record.CustomerID = d.Customer.ID
			record.CustomerName = d.Customer.Name
		}
		dealRecords = append(dealRecords, record)
	}
	return customerRecords, dealRecords
}

// GetDashboardHandler returns the full derived-metrics report for the
// owner, served from Redis when a fresh copy exists.
func GetDashboardHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	cacheKey := dashboardCacheKey(ownerID)
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, cacheKey).Result()
		if err == nil {
			var report analytics.Report
			if json.Unmarshal([]byte(cached), &report) == nil {
				c.JSON(http.StatusOK, report)
				return
			}
			slog.Warn("Failed to unmarshal cached dashboard report", "owner_id", ownerID)
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "owner_id", ownerID)
		}
	}

	customers, deals, err := loadSnapshot(ownerID)
	if err != nil {
		slog.Error("Failed to load dashboard snapshot", "owner_id", ownerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load dashboard data"})
		return
	}

	customerRecords, dealRecords := toRecords(customers, deals)
	report := analytics.BuildReport(customerRecords, dealRecords, time.Now().UTC())

	if config.RDB != nil {
		if jsonData, err := json.Marshal(report); err == nil {
			if err := config.RDB.Set(config.Ctx, cacheKey, jsonData, dashboardCacheTTL).Err(); err != nil {
				slog.Warn("Failed to cache dashboard report", "owner_id", ownerID, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, report)
}

// ExportDashboardHandler writes the customer performance ranking as an
// XLSX workbook.
func ExportDashboardHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	customers, deals, err := loadSnapshot(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}

	customerRecords, dealRecords := toRecords(customers, deals)
	report := analytics.BuildReport(customerRecords, dealRecords, time.Now().UTC())

	f := excelize.NewFile()
	sheetName := "Customer Ranking"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Customer", "Total Value", "Deals", "Conversion Rate %", "Avg Deal Size"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, row := range report.CustomerRanking {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), row.CustomerName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), row.TotalValue)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), row.DealCount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), row.ConversionRate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), row.AvgDealSize)
	}

	fileName := fmt.Sprintf("customer_ranking_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
