package mongostore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

func TestWrap(t *testing.T) {
	assert.ErrorIs(t, wrap("op", mongo.ErrNoDocuments), store.ErrNotFound)

	err := wrap("error fetching patient", errors.New("connection reset"))
	assert.EqualError(t, err, "error fetching patient: connection reset")
}

func TestYearFilter(t *testing.T) {
	assert.Equal(t, bson.M{"date": bson.M{"$regex": "^2025-"}}, yearFilter(2025))
}

func TestMonthlyRevenuePipelineOnlyCountsPaid(t *testing.T) {
	p := monthlyRevenuePipeline(2025)
	require.Len(t, p, 2)

	match, ok := p[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, models.PaymentPaid, match["payment_status"])
	assert.Equal(t, bson.M{"$regex": "^2025-"}, match["date"])

	group, ok := p[1][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$sum": "$amount"}, group["total"])
	assert.Equal(t, monthExpr, group["_id"])
}

func TestDepartmentPipelineCountsDistinctPatients(t *testing.T) {
	p := departmentPipeline()
	require.Len(t, p, 3)

	first := p[0][0].Value.(bson.M)
	assert.Equal(t, bson.M{"department": departmentKey, "patient": "$patient_id"}, first["_id"])
	second := p[1][0].Value.(bson.M)
	assert.Equal(t, "$_id.department", second["_id"])
}

func TestDepartmentKeyFoldsBlankIntoUnassigned(t *testing.T) {
	cond, ok := departmentKey["$cond"].(bson.A)
	require.True(t, ok)
	require.Len(t, cond, 3)
	assert.Equal(t, bson.M{"$eq": bson.A{bson.M{"$ifNull": bson.A{"$department", ""}}, ""}}, cond[0])
	assert.Equal(t, models.UnassignedDepartment, cond[1])
	assert.Equal(t, "$department", cond[2])
}

func TestRepositoriesAgainstMockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get patient", func(mt *mtest.T) {
		repo := &patientRepo{col: collection[models.Patient]{c: mt.Coll}}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "name", Value: "Wafula Otieno"},
			{Key: "contact_info", Value: "wafula.otieno@gmail.com"},
		}))

		p, err := repo.Get(context.Background(), "p1")
		require.NoError(mt, err)
		assert.Equal(mt, "p1", p.ID)
		assert.Equal(mt, "Wafula Otieno", p.Name)
		assert.Equal(mt, "wafula.otieno@gmail.com", p.ContactInfo)
	})

	mt.Run("missing patient", func(mt *mtest.T) {
		repo := &patientRepo{col: collection[models.Patient]{c: mt.Coll}}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Get(context.Background(), "nope")
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("delete nothing", func(mt *mtest.T) {
		repo := &todoRepo{col: collection[models.Todo]{c: mt.Coll}}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, repo.Delete(context.Background(), "nope"), store.ErrNotFound)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := &userRepo{col: collection[models.User]{c: mt.Coll}}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: carewave.users index: email_1",
		}))

		err := repo.Create(context.Background(), &models.User{Email: "admin@carewave.com", Name: "Admin", Role: models.RoleAdministrator})
		assert.ErrorIs(mt, err, store.ErrDuplicate)
	})
}
