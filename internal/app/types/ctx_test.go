package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserKey(t *testing.T) {
	tCases := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{
			name: "user_set",
			ctx:  context.WithValue(context.Background(), UserKey{}, "alice"),
			want: "alice",
		},
		{
			name: "no_user_sentinel",
			ctx:  context.Background(),
			want: DefaultUserID,
		},
		{
			name: "empty_user_sentinel",
			ctx:  context.WithValue(context.Background(), UserKey{}, ""),
			want: DefaultUserID,
		},
		{
			name: "bad_value_type_sentinel",
			ctx:  context.WithValue(context.Background(), UserKey{}, 42),
			want: DefaultUserID,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			assert.Equal(t, tCase.want, GetUserKey(tCase.ctx))
		})
	}
}
