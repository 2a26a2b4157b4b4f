package app

import (
	"context"
	"testing"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// kvInit stores every genesis "kv" entry under its own key.
type kvInit struct{}

func (kvInit) FromGenesis(opts swap.Options, db swap.KVStore) error {
	var data map[string]string
	if err := opts.ReadOptions("kv", &data); err != nil {
		return err
	}
	for k, v := range data {
		if err := db.Set([]byte(k), []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// rawQuery exposes the whole store under "/".
type rawQuery struct{}

func (rawQuery) Query(db swap.ReadOnlyKVStore, mod string, data []byte) ([]swap.Model, error) {
	if mod != swap.KeyQueryMod {
		return nil, errors.Wrap(errors.ErrInvalidInput, "only key queries")
	}
	v, err := db.Get(data)
	if err != nil || v == nil {
		return nil, err
	}
	return []swap.Model{swap.Pair(data, v)}, nil
}

func newTestStoreApp(t *testing.T) *StoreApp {
	t.Helper()
	qr := swap.NewQueryRouter()
	qr.Register("/", rawQuery{})
	s, err := NewStoreApp("test", iavl.NewMemCommitStore(), qr, context.Background())
	require.NoError(t, err)
	return s.WithInit(kvInit{})
}

func TestStoreAppGenesisAndQuery(t *testing.T) {
	s := newTestStoreApp(t)
	assert.Equal(t, "", s.GetChainID())

	s.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain-1",
		AppStateBytes: []byte(`{"kv": {"color": "blue"}}`),
	})
	assert.Equal(t, "test-chain-1", s.GetChainID())
	assert.Equal(t, "test-chain-1", swap.GetChainID(s.baseContext))
	// CheckTx can run before the first block begins
	assert.Equal(t, "test-chain-1", swap.GetChainID(s.BlockContext()))

	// not visible before commit
	res := s.Query(abci.RequestQuery{Path: "/", Data: []byte("color")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	var values ResultSet
	require.NoError(t, values.Unmarshal(res.Value))
	assert.Len(t, values.Results, 0)

	commit := s.Commit()
	assert.NotEmpty(t, commit.Data)

	res = s.Query(abci.RequestQuery{Path: "/", Data: []byte("color")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	assert.Equal(t, int64(1), res.Height)
	require.NoError(t, values.Unmarshal(res.Value))
	assert.Equal(t, [][]byte{[]byte("blue")}, values.Results)

	info := s.Info(abci.RequestInfo{})
	assert.Equal(t, "test", info.Data)
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)

	// genesis can be loaded only once
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{ChainId: "test-chain-2", AppStateBytes: []byte(`{}`)})
	})
}

func TestStoreAppQueryErrors(t *testing.T) {
	s := newTestStoreApp(t)

	res := s.Query(abci.RequestQuery{Path: "/unknown"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)

	res = s.Query(abci.RequestQuery{Path: "/?prefix"})
	assert.Equal(t, errors.ErrInvalidInput.ABCICode(), res.Code)
}

func TestStoreAppMissingGenesis(t *testing.T) {
	s := newTestStoreApp(t)
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{ChainId: "test-chain-1"})
	})
}

func TestSplitPath(t *testing.T) {
	cases := map[string]struct {
		path     string
		wantPath string
		wantMod  string
	}{
		"no modifier":   {path: "/offers", wantPath: "/offers"},
		"prefix":        {path: "/offers?prefix", wantPath: "/offers", wantMod: "prefix"},
		"empty":         {path: "", wantPath: ""},
		"double marker": {path: "/a?b?c", wantPath: "/a", wantMod: "b?c"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			p, m := splitPath(tc.path)
			assert.Equal(t, tc.wantPath, p)
			assert.Equal(t, tc.wantMod, m)
		})
	}
}

func TestResultSet(t *testing.T) {
	models := []swap.Model{
		swap.Pair([]byte("a"), []byte("1")),
		swap.Pair([]byte("b"), []byte("")),
	}
	kb, err := ResultsFromKeys(models).Marshal()
	require.NoError(t, err)
	vb, err := ResultsFromValues(models).Marshal()
	require.NoError(t, err)

	var keys, values ResultSet
	require.NoError(t, keys.Unmarshal(kb))
	require.NoError(t, values.Unmarshal(vb))
	got, err := JoinResults(&keys, &values)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("a"), got[0].Key)
	assert.Equal(t, []byte("1"), got[0].Value)
	assert.Equal(t, []byte("b"), got[1].Key)
	assert.Empty(t, got[1].Value)

	_, err = JoinResults(&keys, &ResultSet{})
	assert.True(t, errors.ErrInvalidState.Is(err))
}
