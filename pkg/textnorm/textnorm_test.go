package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Đà Lạt", want: "Da Lat"},
		{in: "Nguyễn Văn Đức", want: "Nguyen Van Duc"},
		{in: "Hồ Chí Minh", want: "Ho Chi Minh"},
		{in: "Phường Bến Nghé", want: "Phuong Ben Nghe"},
		{in: "đường", want: "duong"},
		{in: "Toyota Vios 1.5G", want: "Toyota Vios 1.5G"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveAccents(tt.in))
		})
	}
}

func TestRemoveAccents_Idempotent(t *testing.T) {
	for _, s := range []string{"Đà Lạt", "Ắc quy", "Lê Thị Hằng", "plain", "ĐĐđđ"} {
		once := RemoveAccents(s)
		assert.Equal(t, once, RemoveAccents(once))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "da lat", Normalize("Đà Lạt"))
	assert.Equal(t, "tran quoc toan", Normalize("TRẦN QUỐC TOẢN"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Nguyễn Văn Đức", "duc"))
	assert.True(t, Contains("Nguyễn Văn Đức", "VĂN"))
	assert.True(t, Contains("Nguyễn Văn Đức", ""))
	assert.False(t, Contains("Nguyễn Văn Đức", "minh"))
}
