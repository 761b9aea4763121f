package crc

import (
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTable32(t *testing.T) {
	t.Parallel()

	tab := MakeTable32()

	require.NotNil(t, tab)
	assert.Equal(t, uint32(0xD202EF8D), tab[0])
	assert.Equal(t, uint32(0xA505DF1B), tab[1])
	assert.Equal(t, uint32(0x3C0C8EA1), tab[2])
	assert.Equal(t, uint32(0x4B0BBE37), tab[3])
	assert.Equal(t, uint32(0xFF000000), tab[255])
}

func TestMakeTable64(t *testing.T) {
	t.Parallel()

	tab := MakeTable64()

	require.NotNil(t, tab)
	assert.Equal(t, uint64(0), tab[0])
	assert.Equal(t, uint64(0xB32E4CBE03A75F6F), tab[1])
	assert.Equal(t, uint64(0xF4843657A840A05B), tab[2])
	assert.Equal(t, uint64(0x47AA7AE9ABE7FF34), tab[3])
	assert.Equal(t, uint64(0xE0ADA17364673F59), tab[255])
}

func TestTablesAreIndependent(t *testing.T) {
	t.Parallel()

	a, b := MakeTable32(), MakeTable32()

	require.Equal(t, *a, *b)

	a[0] = 0

	assert.NotEqual(t, *a, *b)
	assert.Equal(t, uint32(0xD202EF8D), MakeTable32()[0])
}

func TestChecksum32(t *testing.T) {
	t.Parallel()

	tab := MakeTable32()

	for _, tcase := range []*struct {
		In  string
		Exp uint32
	}{
		{"", 0},
		{"a", 0xE8B7BE43},
		{"abc", 0x352441C2},
		{"123456789", 0xCBF43926},
		{"\x00a", 0x7B6C4331},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%q", tcase.In)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.Exp, tab.Checksum([]byte(tcase.In)))
			assert.Equal(t, tcase.Exp, tab.ChecksumString(tcase.In))
		})
	}
}

func TestChecksum64(t *testing.T) {
	t.Parallel()

	tab := MakeTable64()

	for _, tcase := range []*struct {
		In  string
		Exp uint64
	}{
		{"", 0},
		{"a", 0x2CAF25044A02145C},
		{"abc", 0xB61C87266BEE41AA},
		{"123456789", 0x0956F7D33E487DB1},
		{"\x00a", 0x2CAF25044A02145C}, // leading NULs keep a zero accumulator
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%q", tcase.In)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.Exp, tab.Checksum([]byte(tcase.In)))
			assert.Equal(t, tcase.Exp, tab.ChecksumString(tcase.In))
		})
	}
}

func TestChecksum32_MatchesIEEE(t *testing.T) {
	t.Parallel()

	var (
		tab   = MakeTable32()
		faker = gofakeit.New(1234567890)
	)

	for i := 0; i < 1000; i++ {
		s := faker.Sentence(i%7 + 1)

		require.Equal(t, crc32.ChecksumIEEE([]byte(s)), tab.ChecksumString(s), s)
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	t.Parallel()

	var (
		t32   = MakeTable32()
		t64   = MakeTable64()
		faker = gofakeit.New(42)
	)

	for i := 0; i < 100; i++ {
		s := faker.Word()

		assert.Equal(t, t32.ChecksumString(s), MakeTable32().ChecksumString(s))
		assert.Equal(t, t64.ChecksumString(s), MakeTable64().ChecksumString(s))
	}
}
