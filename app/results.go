package app

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// ResultSet is the serialized form of a list of keys or values returned
// by a query.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []swap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []swap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a list of models again
func JoinResults(keys, values *ResultSet) ([]swap.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrInvalidState, "%d keys, %d values", len(kref), len(vref))
	}
	res := make([]swap.Model, len(kref))
	for i := range kref {
		res[i] = swap.Model{Key: kref[i], Value: vref[i]}
	}
	return res, nil
}
