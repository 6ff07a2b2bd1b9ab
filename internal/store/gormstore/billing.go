package gormstore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

var _ store.BillingRepository = (*billingRepo)(nil)

// billingRepo keeps the service names of a record in billing_services, one
// row per name in display order.
type billingRepo struct{ db *gorm.DB }

func withServiceLines(tx *gorm.DB) *gorm.DB {
	return tx.Preload("ServiceLines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func flattenServices(b *models.BillingRecord) {
	b.Services = make([]string, 0, len(b.ServiceLines))
	for _, line := range b.ServiceLines {
		b.Services = append(b.Services, line.ServiceName)
	}
	b.ServiceLines = nil
}

func replaceServiceLines(tx *gorm.DB, billingID string, services []string) error {
	if err := tx.Where("billing_id = ?", billingID).Delete(&models.BillingService{}).Error; err != nil {
		return err
	}
	if len(services) == 0 {
		return nil
	}
	lines := make([]models.BillingService, 0, len(services))
	for i, name := range services {
		lines = append(lines, models.BillingService{
			ID:          uuid.NewString(),
			BillingID:   billingID,
			ServiceName: name,
			Position:    i,
		})
	}
	return tx.Create(&lines).Error
}

func (r *billingRepo) find(ctx context.Context, op string, query any, args ...any) ([]models.BillingRecord, error) {
	var records []models.BillingRecord
	tx := withServiceLines(r.db.WithContext(ctx)).Order("date DESC").Order("created_at DESC")
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&records).Error; err != nil {
		return nil, wrap(op, err)
	}
	for i := range records {
		flattenServices(&records[i])
	}
	return records, nil
}

func (r *billingRepo) List(ctx context.Context) ([]models.BillingRecord, error) {
	return r.find(ctx, "error fetching billing records", nil)
}

func (r *billingRepo) ListByPatient(ctx context.Context, patientID string) ([]models.BillingRecord, error) {
	return r.find(ctx, "error fetching patient billing records", "patient_id = ?", patientID)
}

func (r *billingRepo) Get(ctx context.Context, id string) (*models.BillingRecord, error) {
	var b models.BillingRecord
	if err := withServiceLines(r.db.WithContext(ctx)).First(&b, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching billing record", err)
	}
	flattenServices(&b)
	return &b, nil
}

func (r *billingRepo) Create(ctx context.Context, b *models.BillingRecord) error {
	ensureID(&b.ID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		return replaceServiceLines(tx, b.ID, b.Services)
	})
	if err != nil {
		return wrap("error creating billing record", err)
	}
	if b.Services == nil {
		b.Services = []string{}
	}
	return nil
}

func (r *billingRepo) Update(ctx context.Context, id string, u models.BillingUpdate) (*models.BillingRecord, error) {
	var b models.BillingRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := withServiceLines(tx).First(&b, "id = ?", id).Error; err != nil {
			return err
		}
		flattenServices(&b)
		u.Apply(&b)
		if err := tx.Omit(clause.Associations).Save(&b).Error; err != nil {
			return err
		}
		if u.Services != nil {
			return replaceServiceLines(tx, b.ID, b.Services)
		}
		return nil
	})
	if err != nil {
		return nil, wrap("error updating billing record", err)
	}
	return &b, nil
}

func (r *billingRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("billing_id = ?", id).Delete(&models.BillingService{}).Error; err != nil {
			return wrap("error deleting billing services", err)
		}
		return deleteByID(ctx, tx, &models.BillingRecord{}, id, "error deleting billing record")
	})
}
