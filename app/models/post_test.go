package models

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: Post{Author: "alice", Text: "hello world"},
		},
		{
			name: "valid grouped post",
			post: Post{Author: "alice", Group: "gophers", Text: "hello"},
		},
		{
			name:    "empty text",
			post:    Post{Author: "alice"},
			wantErr: true,
		},
		{
			name:    "oversized text",
			post:    Post{Author: "alice", Text: strings.Repeat("x", 10001)},
			wantErr: true,
		},
		{
			name:    "missing author",
			post:    Post{Text: "hello"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostValidateAggregatesFailures(t *testing.T) {
	post := Post{}

	err := post.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	// Author and text both failed; one error reports both.
	assert.Len(t, verrs, 2)
}

func TestPostBeforeCreate(t *testing.T) {
	post := Post{Author: "alice", Text: "hello"}
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())

	fixed := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	post = Post{Author: "alice", Text: "hello", CreatedAt: fixed}
	post.BeforeCreate()
	assert.Equal(t, fixed, post.CreatedAt)
}

func TestCommentValidate(t *testing.T) {
	valid := Comment{PostID: 1, Author: "bob", Text: "nice"}
	assert.NoError(t, valid.Validate())

	missingPost := Comment{Author: "bob", Text: "nice"}
	assert.Error(t, missingPost.Validate())

	empty := Comment{PostID: 1, Author: "bob"}
	assert.Error(t, empty.Validate())
}
