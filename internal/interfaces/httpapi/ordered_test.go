package httpapi

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedObject_KeepsInsertionOrder(t *testing.T) {
	obj := orderedObject{
		{Key: "2", Value: []int{1}},
		{Key: "10", Value: "x"},
		{Key: "1", Value: nil},
	}

	raw, err := sonic.Marshal(struct {
		Rounds orderedObject `json:"rounds"`
	}{Rounds: obj})
	require.NoError(t, err)
	assert.Equal(t, `{"rounds":{"2":[1],"10":"x","1":null}}`, string(raw))
}

func TestOrderedObject_Empty(t *testing.T) {
	raw, err := orderedObject{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}
