package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechnologiesCommaSeparated(t *testing.T) {
	got := parseTechnologies("React, Node.js, MongoDB")
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, got)
}

func TestParseTechnologiesJSONStrings(t *testing.T) {
	got := parseTechnologies(`["Go","Postgres"]`)
	assert.Equal(t, []string{"Go", "Postgres"}, got)
}

func TestParseTechnologiesJSONObjects(t *testing.T) {
	got := parseTechnologies(`[{"name":"Go"},{"name":"Redis"}]`)
	assert.Equal(t, []string{"Go", "Redis"}, got)
}

func TestParseTechnologiesEmpty(t *testing.T) {
	assert.Empty(t, parseTechnologies(""))
	assert.Empty(t, parseTechnologies("   "))
}

func TestParseTechnologiesDropsBlanks(t *testing.T) {
	got := parseTechnologies("React, , ,Node.js,")
	assert.Equal(t, []string{"React", "Node.js"}, got)
}

func TestParseTechnologiesValidJSONNonArray(t *testing.T) {
	// valid JSON that is not an array yields nothing rather than a comma split
	assert.Empty(t, parseTechnologies(`{"name":"Go"}`))
	assert.Empty(t, parseTechnologies(`"Go"`))
}

func TestParseTechnologiesInvalidJSONFallsBack(t *testing.T) {
	got := parseTechnologies(`["Go", "Postgres"`)
	assert.Equal(t, []string{`["Go"`, `"Postgres"`}, got)
}

func TestLooseBool(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"yes"`, false},
		{`1`, false},
		{`null`, false},
	}
	for _, tc := range cases {
		var b looseBool
		assert.NoError(t, json.Unmarshal([]byte(tc.raw), &b), tc.raw)
		assert.Equal(t, tc.want, bool(b), tc.raw)
	}
}

func TestLooseInt(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`3`, 3},
		{`"7"`, 7},
		{`" 12 "`, 12},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
	}
	for _, tc := range cases {
		var n looseInt
		assert.NoError(t, json.Unmarshal([]byte(tc.raw), &n), tc.raw)
		assert.Equal(t, tc.want, int(n), tc.raw)
	}
}

func TestLooseActive(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"false"`, false},
		{`"true"`, true},
		{`"anything"`, true},
		{`null`, true},
	}
	for _, tc := range cases {
		var b looseActive
		assert.NoError(t, json.Unmarshal([]byte(tc.raw), &b), tc.raw)
		assert.Equal(t, tc.want, bool(b), tc.raw)
	}
}
