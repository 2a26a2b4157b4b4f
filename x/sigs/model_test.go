package sigs

import (
	"testing"

	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestUserDataSequence(t *testing.T) {
	cases := map[string]struct {
		user     UserData
		expected int64
		wantSeq  int64
		wantErr  *errors.Error
	}{
		"first use": {
			user:     UserData{},
			expected: 0,
			wantSeq:  1,
		},
		"mismatch": {
			user:     UserData{Sequence: 4},
			expected: 3,
			wantSeq:  4,
			wantErr:  ErrInvalidSequence,
		},
		"maximum reached": {
			user:     UserData{Sequence: (1 << 53) - 1},
			expected: (1 << 53) - 1,
			wantSeq:  (1 << 53) - 1,
			wantErr:  errors.ErrOverflow,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			u := tc.user
			err := u.CheckAndIncrementSequence(tc.expected)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}
			assert.Equal(t, tc.wantSeq, u.Sequence)
		})
	}
}

func TestUserDataValidate(t *testing.T) {
	assert.Nil(t, (&UserData{}).Validate())
	assert.IsErr(t, ErrInvalidSequence, (&UserData{Sequence: -1}).Validate())
	assert.IsErr(t, ErrInvalidSequence, (&UserData{Sequence: 2}).Validate())
}

func TestBucketPersistsUser(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()
	pub := swaptest.NewKey().PublicKey()

	user, err := b.GetOrCreate(db, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), user.Sequence)

	assert.Nil(t, user.CheckAndIncrementSequence(0))
	assert.Nil(t, b.Put(db, pub.Address(), user))

	var loaded UserData
	assert.Nil(t, b.One(db, pub.Address(), &loaded))
	assert.Equal(t, int64(1), loaded.Sequence)
	assert.Equal(t, pub.Ed25519, loaded.Pubkey.Ed25519)
}
