package custom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDateOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want Date
	}{
		{
			name: "UTC",
			in:   time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC),
			want: "2024-03-09",
		},
		{
			name: "AheadOfUTC",
			in:   time.Date(2024, 3, 10, 1, 0, 0, 0, time.FixedZone("plus2", 2*60*60)),
			want: "2024-03-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateOf(tt.in)
			require.Equal(t, tt.want, got)
			require.True(t, got.Valid())
			require.False(t, got.IsZero())
		})
	}

	require.True(t, Date("").IsZero())
	require.False(t, Date("yesterday").Valid())
}

func TestDatetime_JSON(t *testing.T) {
	d := Datetime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2024-01-02T03:04:05Z"`, string(b))

	var got Datetime
	require.NoError(t, got.UnmarshalJSON(b))
	require.True(t, time.Time(d).Equal(time.Time(got)))

	b, err = Datetime{}.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(b))

	require.NoError(t, got.UnmarshalJSON([]byte("null")))
	require.True(t, time.Time(got).IsZero())
}

func TestDatetime_BSON(t *testing.T) {
	type doc struct {
		At Datetime `bson:"at"`
	}

	in := doc{At: Datetime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))}
	b, err := bson.Marshal(in)
	require.NoError(t, err)

	var out doc
	require.NoError(t, bson.Unmarshal(b, &out))
	require.True(t, time.Time(in.At).Equal(time.Time(out.At)))
}
