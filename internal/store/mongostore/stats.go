package mongostore

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

var _ store.StatsRepository = (*statsRepo)(nil)

type statsRepo struct{ db *mongo.Database }

// monthExpr extracts "MM" from an ISO "YYYY-MM-DD" date field.
var monthExpr = bson.M{"$substrBytes": bson.A{"$date", 5, 2}}

func yearFilter(year int) bson.M {
	return bson.M{"date": bson.M{"$regex": fmt.Sprintf("^%04d-", year)}}
}

func monthlyCountPipeline(year int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: yearFilter(year)}},
		{{Key: "$group", Value: bson.M{"_id": monthExpr, "total": bson.M{"$sum": 1}}}},
	}
}

func monthlyRevenuePipeline(year int) mongo.Pipeline {
	match := yearFilter(year)
	match["payment_status"] = models.PaymentPaid
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": monthExpr, "total": bson.M{"$sum": "$amount"}}}},
	}
}

// departmentKey folds a missing or blank department into the Unassigned bucket.
var departmentKey = bson.M{"$cond": bson.A{
	bson.M{"$eq": bson.A{bson.M{"$ifNull": bson.A{"$department", ""}}, ""}},
	models.UnassignedDepartment,
	"$department",
}}

func departmentPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": bson.M{"department": departmentKey, "patient": "$patient_id"}}}},
		{{Key: "$group", Value: bson.M{"_id": "$_id.department", "total": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

func statusPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "total": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

type countRow struct {
	Key   string `bson:"_id"`
	Total int64  `bson:"total"`
}

type sumRow struct {
	Key   string  `bson:"_id"`
	Total float64 `bson:"total"`
}

func aggregate[T any](ctx context.Context, c *mongo.Collection, op string, p mongo.Pipeline) ([]T, error) {
	cursor, err := c.Aggregate(ctx, p)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer cursor.Close(ctx)
	var rows []T
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, wrap(op, err)
	}
	return rows, nil
}

func (r *statsRepo) count(ctx context.Context, col, op string, filter bson.M) (int64, error) {
	n, err := r.db.Collection(col).CountDocuments(ctx, filter)
	if err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}

func (r *statsRepo) CountPatients(ctx context.Context) (int64, error) {
	return r.count(ctx, colPatients, "error counting patients", bson.M{})
}

func (r *statsRepo) CountAppointments(ctx context.Context) (int64, error) {
	return r.count(ctx, colAppointments, "error counting appointments", bson.M{})
}

func (r *statsRepo) CountAppointmentsOn(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, colAppointments, "error counting today's appointments", bson.M{"date": date})
}

func (r *statsRepo) CountUpcoming(ctx context.Context, from string) (int64, error) {
	return r.count(ctx, colAppointments, "error counting upcoming appointments",
		bson.M{"date": bson.M{"$gte": from}, "status": models.AppointmentScheduled})
}

func (r *statsRepo) AppointmentsByMonth(ctx context.Context, year int) (map[int]int64, error) {
	rows, err := aggregate[countRow](ctx, r.db.Collection(colAppointments),
		"error aggregating monthly visits", monthlyCountPipeline(year))
	if err != nil {
		return nil, err
	}
	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		if m, err := strconv.Atoi(row.Key); err == nil {
			out[m] = row.Total
		}
	}
	return out, nil
}

func (r *statsRepo) RevenueByMonth(ctx context.Context, year int) (map[int]float64, error) {
	rows, err := aggregate[sumRow](ctx, r.db.Collection(colBilling),
		"error aggregating revenue", monthlyRevenuePipeline(year))
	if err != nil {
		return nil, err
	}
	out := make(map[int]float64, len(rows))
	for _, row := range rows {
		if m, err := strconv.Atoi(row.Key); err == nil {
			out[m] = row.Total
		}
	}
	return out, nil
}

func (r *statsRepo) PatientsByDepartment(ctx context.Context) ([]models.DepartmentPatients, error) {
	rows, err := aggregate[countRow](ctx, r.db.Collection(colAppointments),
		"error aggregating departments", departmentPipeline())
	if err != nil {
		return nil, err
	}
	out := make([]models.DepartmentPatients, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.DepartmentPatients{Department: row.Key, Patients: row.Total})
	}
	return out, nil
}

func (r *statsRepo) AppointmentsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	rows, err := aggregate[countRow](ctx, r.db.Collection(colAppointments),
		"error aggregating appointment status", statusPipeline())
	if err != nil {
		return nil, err
	}
	out := make([]models.StatusCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.StatusCount{Status: row.Key, Count: row.Total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}
