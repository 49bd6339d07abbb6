package validator_test

import (
	"strings"
	"testing"

	"suggestion-app/src/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchQuery struct {
	Search string `validate:"omitempty,max=200,search_term"`
}

type requiredQuery struct {
	Name string `validate:"required,min=2"`
}

func TestCustomValidator_SearchTerm(t *testing.T) {
	cv := validator.NewCustomValidator()

	tests := []struct {
		name    string
		search  string
		wantErr bool
		tag     string
	}{
		{name: "空文字", search: "", wantErr: false},
		{name: "通常の検索語", search: "techno", wantErr: false},
		{name: "アクセント付き", search: "Événements", wantErr: false},
		{name: "アポストロフィ", search: "l'interface", wantErr: false},
		{name: "タブは許可", search: "a\tb", wantErr: false},
		{name: "制御文字", search: "abc\x00", wantErr: true, tag: "search_term"},
		{name: "改行", search: "abc\ndef", wantErr: true, tag: "search_term"},
		{name: "長すぎる", search: strings.Repeat("é", 201), wantErr: true, tag: "max"},
		{name: "ちょうど上限", search: strings.Repeat("é", 200), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(searchQuery{Search: tt.search})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs.Errors, 1)
			assert.Equal(t, "Search", verrs.Errors[0].Field)
			assert.Equal(t, tt.tag, verrs.Errors[0].Tag)
			assert.NotEmpty(t, verrs.Errors[0].Message)
		})
	}
}

func TestCustomValidator_Messages(t *testing.T) {
	cv := validator.NewCustomValidator()

	err := cv.Validate(requiredQuery{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Name は必須項目です", verrs.Errors[0].Message)

	err = cv.Validate(requiredQuery{Name: "a"})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Name は 2 文字以上で入力してください", verrs.Errors[0].Message)

	assert.Contains(t, verrs.Error(), "1 errors")
}
