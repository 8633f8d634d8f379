package services

import (
	"log"
	"time"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartPaymentReconciler polls the gateway hourly for payments that are
// still pending locally and refreshes their status. This is the only
// recovery path besides the status-update endpoint.
func StartPaymentReconciler(db *gorm.DB, gateway *MercadoPago) {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		ReconcilePendingPayments(db, gateway)
	})
	c.Start()
	log.Printf("[PAYMENT CRON] Reconciler started, pending payments refreshed hourly")
}

// ReconcilePendingPayments refreshes payments that have been pending for
// over an hour. Gateway failures are logged and skipped; the next run
// retries.
func ReconcilePendingPayments(db *gorm.DB, gateway *MercadoPago) {
	cutoff := time.Now().Add(-time.Hour)

	var payments []models.Payment
	if err := db.Where("status = ? AND created_at < ?", "pending", cutoff).Find(&payments).Error; err != nil {
		utils.LogError(err, "ReconcilePendingPayments query")
		return
	}

	for _, payment := range payments {
		status, err := gateway.FindPaymentStatusByPreference(payment.PreferenceID)
		if err != nil {
			utils.LogError(err, "ReconcilePendingPayments gateway")
			continue
		}
		if status == "" || status == payment.Status {
			continue
		}

		payment.Status = status
		if err := db.Save(&payment).Error; err != nil {
			utils.LogError(err, "ReconcilePendingPayments save")
			continue
		}
		if payment.OrderID != nil {
			if err := db.Model(&models.Order{}).Where("id = ?", *payment.OrderID).
				Update("payment_status", status).Error; err != nil {
				utils.LogError(err, "ReconcilePendingPayments order sync")
			}
		}
	}
}
