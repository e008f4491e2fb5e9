package getarg

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/amterp/color"
	"github.com/stretchr/testify/assert"
)

func TestGenerateDump(t *testing.T) {
	t.Setenv("GETARG_COLOR", "never")

	a := Parse([]string{"testprog", "-PMM=1", "-noPMM=0", "foo", "-PMM=2", "--bar", "-noquiet"})

	expected := `Getarg Dump
==================================================

Arguments to Parse:
  [0]: "-PMM=1"
  [1]: "-noPMM=0"
  [2]: "foo"
  [3]: "-PMM=2"
  [4]: "--bar"
  [5]: "-noquiet"

Parsed Flags:
  -PMM positive:"2" occurrences:2 negated:"0" bool:true string:"2"
  -bar positive:"" negated:<none> bool:true string:""
  -quiet positive:<none> negated:"" bool:false string:""

Environment:
  GETARG_COLOR: never
`

	assert.Equal(t, expected, a.GenerateDump())
}

func TestGenerateDumpEmpty(t *testing.T) {
	t.Setenv("GETARG_COLOR", "never")

	expected := `Getarg Dump
==================================================

Arguments to Parse:
  <no arguments>

Parsed Flags:
  <no flags>

Environment:
  GETARG_COLOR: never
`

	assert.Equal(t, expected, Parse([]string{"testprog"}).GenerateDump())

	var a *Args
	assert.Equal(t, expected, a.GenerateDump())
}

func TestPrintDump(t *testing.T) {
	t.Setenv("GETARG_COLOR", "never")

	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	a := resetArgs("-x=1")
	a.PrintDump()

	assert.Equal(t, a.GenerateDump(), stdout.String())
	assert.Contains(t, stdout.String(), `-x positive:"1" negated:<none> bool:true string:"1"`)
}

func TestGenerateDumpColorSetting(t *testing.T) {
	noColorBefore := color.NoColor
	a := resetArgs("-x=1")

	t.Setenv("GETARG_COLOR", "always")
	assert.Contains(t, a.GenerateDump(), "\x1b[")

	t.Setenv("GETARG_COLOR", "never")
	assert.NotContains(t, a.GenerateDump(), "\x1b[")

	assert.Equal(t, noColorBefore, color.NoColor)
}

func TestGenerateDumpConcurrent(t *testing.T) {
	t.Setenv("GETARG_COLOR", "never")

	a := resetArgs("-x=1 -noy")
	want := a.GenerateDump()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, a.GenerateDump())
			}
		}()
	}
	wg.Wait()
}
