package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := newRulesCommand()

	flag := cmd.Flags().Lookup("rule-format")
	require.NotNil(t, flag)
	assert.Equal(t, "combined", flag.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}

func TestRulesCommand_JSON(t *testing.T) {
	t.Parallel()

	cmd := newRulesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	var infos []ruleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.Len(t, infos, 12)

	assert.Equal(t, "S001", infos[0].ID)
	assert.Equal(t, "line-length", infos[0].Name)
	assert.Equal(t, "S012", infos[11].ID)
	assert.Equal(t, "mutable-default", infos[11].Name)
	for _, info := range infos {
		assert.NotEmpty(t, info.Description, info.ID)
		assert.NotEmpty(t, info.Tags, info.ID)
	}
}

func TestRulesCommand_Text(t *testing.T) {
	t.Parallel()

	cmd := newRulesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--rule-format", "combined"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "S001/line-length")
	assert.Contains(t, out.String(), "S012/mutable-default")
}

func TestRulesCommand_InvalidFormats(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--format", "yaml"},
		{"--rule-format", "short"},
	} {
		cmd := newRulesCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}

func TestRulesCommand_SelectsRules(t *testing.T) {
	t.Parallel()

	cmd := newRulesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "mutable-default", "S003"})

	require.NoError(t, cmd.Execute())

	var infos []ruleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "S003", infos[0].ID)
	assert.Equal(t, "S012", infos[1].ID)
}

func TestRulesCommand_UnknownRule(t *testing.T) {
	t.Parallel()

	cmd := newRulesCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"S099"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, `unknown rule "S099"`, err.Error())
}
