package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/kunalz06/btf-website/internal/model"
)

func TestParticipantConverter(t *testing.T) {
	t.Parallel()

	t.Run("nil is passed through", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, EntityToModel(nil))
		assert.Nil(t, EntityFromModel(nil))
	})

	t.Run("round trip preserves all fields", func(t *testing.T) {
		t.Parallel()

		p := &model.Participant{
			ParticipantID:   "WBKON5642D4",
			Name:            gofakeit.Name(),
			TeamNumber:      int64(gofakeit.Number(1, 50)),
			ParticipantType: "team",
			Email:           gofakeit.Email(),
			OrderID:         gofakeit.UUID(),
			PaymentID:       gofakeit.UUID(),
			PaymentStatus:   model.PaymentStatusSuccessful,
			RegisteredAt:    time.Now().Truncate(time.Millisecond),
		}

		got := EntityToModel(EntityFromModel(p))
		require.NotNil(t, got)
		assert.Equal(t, p, got)
	})

	t.Run("empty payment status defaults to successful", func(t *testing.T) {
		t.Parallel()

		ent := EntityFromModel(&model.Participant{Name: gofakeit.Name()})
		require.NotNil(t, ent)
		assert.Equal(t, model.PaymentStatusSuccessful, ent.PaymentStatus)
	})
}

func TestDuplicateKeyError(t *testing.T) {
	t.Parallel()

	dupOn := func(index string) error {
		return mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{
				Code: 11000,
				Message: fmt.Sprintf(
					"E11000 duplicate key error collection: btf.participants index: %s dup key",
					index,
				),
			}},
		}
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "unrelated error",
			err:  fmt.Errorf("connection reset"),
			want: nil,
		},
		{
			name: "payment id index means redelivered webhook",
			err:  dupOn(paymentIDIndexName),
			want: model.ErrPaymentAlreadyRecorded,
		},
		{
			name: "participant id index means generated id collision",
			err:  dupOn(participantIDIndexName),
			want: model.ErrParticipantIDTaken,
		},
		{
			name: "unrecognized unique index falls back to payment sentinel",
			err:  dupOn("uniq_something_else"),
			want: model.ErrPaymentAlreadyRecorded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := duplicateKeyError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
