package repository

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}

	assert.True(t, IsDuplicateKey(dup))
	assert.True(t, IsDuplicateKey(errors.Wrap(dup, "upsert attempt")), "wrapped errors unwrap to the cause")
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}))
}
