package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/evseq/archive"
	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/section"
)

func writeJSON(t *testing.T, dir, name string, seqs ...dataset.Sequence) string {
	t.Helper()

	b := dataset.NewBuilder()
	require.NoError(t, b.AddTypes("start", "stop"))
	for i, seq := range seqs {
		_, err := b.AddSequence(name+string(rune('0'+i)), seq)
		require.NoError(t, err)
	}
	ds, err := b.Build()
	require.NoError(t, err)

	path := filepath.Join(dir, name+".json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, archive.WriteJSON(f, ds))
	require.NoError(t, f.Close())

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error", "--seed", "5"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func readArchive(t *testing.T, path string) *dataset.Dataset {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	ds, err := archive.Read(f)
	require.NoError(t, err)

	return ds
}

func TestStitchCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeJSON(t, dir, "a",
		dataset.Sequence{Times: []float64{1, 2}, Events: []int{0, 1}, TStart: 0, TStop: 3},
	)
	b := writeJSON(t, dir, "b",
		dataset.Sequence{Times: []float64{6}, Events: []int{1}, TStart: 5, TStop: 7},
	)
	out := filepath.Join(dir, "out.evs")

	_, err := run(t, "stitch", "--a", a, "--b", b, "--out", out)
	require.NoError(t, err)

	ds := readArchive(t, out)
	require.Equal(t, []float64{1, 2, 4}, ds.Sequences[0].Times)
	require.Equal(t, []int{0, 1, 1}, ds.Sequences[0].Events)
	require.Equal(t, 5.0, ds.Sequences[0].TStop)
}

func TestSuperposeCommandCompression(t *testing.T) {
	dir := t.TempDir()
	a := writeJSON(t, dir, "a",
		dataset.Sequence{Times: []float64{1, 3}, Events: []int{0, 0}, TStart: 0, TStop: 4},
	)
	b := writeJSON(t, dir, "b",
		dataset.Sequence{Times: []float64{2}, Events: []int{1}, TStart: 0, TStop: 4},
	)
	out := filepath.Join(dir, "out.evs")

	_, err := run(t, "--compression", "s2", "superpose", "--a", a, "--b", b, "--mode", "feature", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	header, err := section.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, "s2", header.Flag.Compression().String())

	ds := readArchive(t, out)
	require.Equal(t, []float64{1, 2, 3}, ds.Sequences[0].Times)
	require.Equal(t, []int{0, 1, 0}, ds.Sequences[0].Events)
}

func TestComposeCommandErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeJSON(t, dir, "a",
		dataset.Sequence{Times: []float64{1}, Events: []int{0}, TStart: 0, TStop: 2},
	)

	_, err := run(t, "stitch", "--a", a, "--b", filepath.Join(dir, "missing.json"), "--out", filepath.Join(dir, "o.evs"))
	require.Error(t, err)

}

func TestComposeCommandUnknownMode(t *testing.T) {
	dir := t.TempDir()
	a := writeJSON(t, dir, "a",
		dataset.Sequence{Times: []float64{1}, Events: []int{0}, TStart: 0, TStop: 2},
	)
	b := writeJSON(t, dir, "b",
		dataset.Sequence{Times: []float64{4}, Events: []int{1}, TStart: 3, TStop: 5},
	)

	for _, name := range []string{"stitch", "superpose"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name+".evs")
			_, err := run(t, name, "--a", a, "--b", b, "--mode", "similar", "--out", out)
			require.NoError(t, err)

			want, err := loadDataset(a)
			require.NoError(t, err)
			require.Equal(t, want, readArchive(t, out))
		})
	}
}

func TestAggregateAndInfo(t *testing.T) {
	dir := t.TempDir()
	in := writeJSON(t, dir, "in",
		dataset.Sequence{Times: []float64{1, 4, 6, 9}, Events: []int{0, 1, 0, 1}, TStart: 0, TStop: 10},
	)
	out := filepath.Join(dir, "binned.json")

	_, err := run(t, "aggregate", "--in", in, "--dt", "5", "--assign", "floor", "--out", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	ds, err := archive.ReadJSON(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.Equal(t, []float64{5, 10, 15}, ds.Sequences[0].Times)
	require.Equal(t, [][]int{{1, 1}, {1, 1}, {0, 0}}, ds.Sequences[0].Counts)

	stdout, err := run(t, "info", "--in", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "types=2 sequences=1")
	require.Contains(t, stdout, "aggregated=true")

	_, err = run(t, "aggregate", "--in", in, "--dt", "0", "--out", out)
	require.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeJSON(t, dir, "in",
		dataset.Sequence{Times: []float64{0.5}, Events: []int{1}, TStart: 0, TStop: 1, Label: dataset.LabelOf(2)},
	)
	bin := filepath.Join(dir, "in.evs")
	back := filepath.Join(dir, "back.json")

	_, err := run(t, "convert", "--in", in, "--out", bin)
	require.NoError(t, err)
	_, err = run(t, "convert", "--in", bin, "--out", back)
	require.NoError(t, err)

	want, err := os.ReadFile(in)
	require.NoError(t, err)
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "--compression", "brotli", "info", "--in", "x.json")
	require.Error(t, err)
}
