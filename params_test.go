package rappor_test

import (
	"strings"
	"testing"

	"github.com/clebeer/rappor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*rappor.Params)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(p *rappor.Params) {}},
		{name: "boundary probabilities", mutate: func(p *rappor.Params) {
			p.ProbP, p.ProbQ, p.ProbF = 0, 1, 0
		}},
		{name: "wide filter", mutate: func(p *rappor.Params) { p.NumBloomBits = 1 << 16 }},
		{name: "zero bloom bits", mutate: func(p *rappor.Params) { p.NumBloomBits = 0 }, wantErr: true},
		{name: "bloom bits beyond hash range", mutate: func(p *rappor.Params) { p.NumBloomBits = 1<<16 + 1 }, wantErr: true},
		{name: "zero hashes", mutate: func(p *rappor.Params) { p.NumHashes = 0 }, wantErr: true},
		{name: "more hashes than bits", mutate: func(p *rappor.Params) { p.NumHashes = 17 }, wantErr: true},
		{name: "zero cohorts", mutate: func(p *rappor.Params) { p.NumCohorts = 0 }, wantErr: true},
		{name: "negative p", mutate: func(p *rappor.Params) { p.ProbP = -0.1 }, wantErr: true},
		{name: "q above one", mutate: func(p *rappor.Params) { p.ProbQ = 1.5 }, wantErr: true},
		{name: "f above one", mutate: func(p *rappor.Params) { p.ProbF = 2 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := rappor.DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var ce *rappor.ConfigError
			require.ErrorAs(t, err, &ce)
		})
	}
}

func TestParamsFromCSV(t *testing.T) {
	p, err := rappor.ParamsFromCSV(strings.NewReader("k,h,m,p,q,f\n16,2,64,0.5,0.75,0.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 16, p.NumBloomBits)
	assert.Equal(t, 2, p.NumHashes)
	assert.Equal(t, 64, p.NumCohorts)
	assert.Equal(t, 0.5, p.ProbP)
	assert.Equal(t, 0.75, p.ProbQ)
	assert.Equal(t, 0.5, p.ProbF)
	assert.False(t, p.OnePRRPerValue)
}

func TestParamsFromCSV_ColumnsMapInOrder(t *testing.T) {
	// p, q, and f are distinct so a column mixup cannot go unnoticed.
	p, err := rappor.ParamsFromCSV(strings.NewReader("k,h,m,p,q,f\n32,4,8,0.25,0.75,0.1\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.25, p.ProbP)
	assert.Equal(t, 0.75, p.ProbQ)
	assert.Equal(t, 0.1, p.ProbF)
}

func TestParamsFromCSV_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "bad header", input: "k,h,m,p,q,g\n16,2,64,0.5,0.75,0.5\n"},
		{name: "header too short", input: "k,h,m\n16,2,64\n"},
		{name: "missing second row", input: "k,h,m,p,q,f\n"},
		{name: "three rows", input: "k,h,m,p,q,f\n16,2,64,0.5,0.75,0.5\n16,2,64,0.5,0.75,0.5\n"},
		{name: "short data row", input: "k,h,m,p,q,f\n16,2,64,0.5,0.75\n"},
		{name: "non-integer k", input: "k,h,m,p,q,f\nx,2,64,0.5,0.75,0.5\n"},
		{name: "non-numeric q", input: "k,h,m,p,q,f\n16,2,64,0.5,high,0.5\n"},
		{name: "float for h", input: "k,h,m,p,q,f\n16,2.5,64,0.5,0.75,0.5\n"},
		{name: "out of range f", input: "k,h,m,p,q,f\n16,2,64,0.5,0.75,1.5\n"},
		{name: "zero cohorts", input: "k,h,m,p,q,f\n16,2,0,0.5,0.75,0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rappor.ParamsFromCSV(strings.NewReader(tt.input))
			var ce *rappor.ConfigError
			require.ErrorAs(t, err, &ce)
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	p := rappor.DefaultParams()
	p.NumBloomBits = 0
	verr := p.Validate()
	require.Error(t, verr)
	assert.Contains(t, verr.Error(), "num_bloombits")
	assert.Contains(t, verr.Error(), `"k"`)
}
