package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

func TestKeyFilename(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "plain",
			key:  Key{Year: 2024, GP: "Bahrain", Session: "Q"},
			want: "2024_bahrain_q.json",
		},
		{
			name: "spaces and punctuation",
			key:  Key{Year: 2023, GP: "São Paulo", Session: "Sprint Shootout"},
			want: "2023_s-o-paulo_sprint-shootout.json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Filename())
		})
	}
}

func TestStoreExpiry(t *testing.T) {
	calls := 0
	loader := func(key Key) (*model.Session, error) {
		calls++
		return &model.Session{Year: key.Year}, nil
	}
	s := newStore(50*time.Millisecond, loader, log.Default())
	key := Key{Year: 2024, GP: "Bahrain", Session: "Q"}

	_, err := s.get(key)
	assert.NoError(t, err)
	_, err = s.get(key)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	time.Sleep(60 * time.Millisecond)
	_, err = s.get(key)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestStoreLoaderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	loader := func(key Key) (*model.Session, error) {
		return nil, wantErr
	}
	s := newStore(time.Minute, loader, log.Default())

	sess, err := s.get(Key{Year: 2024, GP: "Bahrain", Session: "Q"})
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, wantErr)
}
