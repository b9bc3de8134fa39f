package main

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestStoreErrClassifiesServerErrors(t *testing.T) {
	// Arrange: erro respondido pelo servidor (unique_violation)
	serverErr := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

	// Act
	err := storeErr(serverErr)

	// Assert: erro da escrita, não indisponibilidade do log
	assert.NotErrorIs(t, err, ErrEventStoreUnavailable)
	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
}

func TestStoreErrClassifiesConnectivityErrors(t *testing.T) {
	// Arrange: o servidor nem respondeu
	dialErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	// Act
	err := storeErr(dialErr)

	// Assert
	assert.ErrorIs(t, err, ErrEventStoreUnavailable)
}
