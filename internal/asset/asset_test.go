package asset

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}

func TestZip_Deterministic(t *testing.T) {
	dir := t.TempDir()
	kubectl := writeFile(t, dir, "kubectl", "kubectl-binary")
	helm := writeFile(t, dir, "helm", "helm-binary")

	first, err := Zip(filepath.Join(dir, "a.zip"), []File{
		{Name: "kubectl/kubectl", Source: kubectl, Mode: 0755},
		{Name: "helm/helm", Source: helm, Mode: 0755},
	})
	require.NoError(t, err)

	second, err := Zip(filepath.Join(dir, "b.zip"), []File{
		{Name: "helm/helm", Source: helm, Mode: 0755},
		{Name: "kubectl/kubectl", Source: kubectl, Mode: 0755},
	})
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash, "input order must not change the archive")
	assert.Len(t, first.Hash, 64)

	onDisk, err := Hash(first.Path)
	require.NoError(t, err)
	assert.Equal(t, first.Hash, onDisk)
}

func TestZip_EntriesSortedWithModes(t *testing.T) {
	dir := t.TempDir()
	kubectl := writeFile(t, dir, "kubectl", "k")
	readme := writeFile(t, dir, "README", "docs")

	a, err := Zip(filepath.Join(dir, "out", "layer.zip"), []File{
		{Name: "kubectl/kubectl", Source: kubectl, Mode: 0755},
		{Name: "README", Source: readme},
	})
	require.NoError(t, err)

	entries, err := List(a.Path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "README", entries[0].Name)
	assert.Equal(t, os.FileMode(0644), entries[0].Mode.Perm())
	assert.Equal(t, "kubectl/kubectl", entries[1].Name)
	assert.Equal(t, os.FileMode(0755), entries[1].Mode.Perm())
	assert.Equal(t, uint64(1), entries[1].Size)
}

func TestZip_Errors(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "bin", "x")

	tests := []struct {
		name    string
		files   []File
		wantErr string
	}{
		{name: "empty", wantErr: "no files to archive"},
		{
			name:    "duplicate",
			files:   []File{{Name: "a", Source: src}, {Name: "a", Source: src}},
			wantErr: `duplicate entry "a"`,
		},
		{
			name:    "escaping name",
			files:   []File{{Name: "../a", Source: src}},
			wantErr: "invalid entry name",
		},
		{
			name:    "missing source",
			files:   []File{{Name: "a", Source: filepath.Join(dir, "nope")}},
			wantErr: "opening",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(dir, tt.name+".zip")
			_, err := Zip(output, tt.files)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.NoFileExists(t, output)
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "abc.zip", Key("", "abc"))
	assert.Equal(t, "assets/abc.zip", Key("assets/", "abc"))
	assert.Equal(t, "assets/abc.zip", Key("assets", "abc"))
	assert.Equal(t, "layers/abc.zip", Asset{Hash: "abc"}.Key("layers"))
}

type fakeS3 struct {
	objects map[string][]byte
	headErr error
	puts    int
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if _, ok := f.objects[*in.Bucket+"/"+*in.Key]; ok {
		return &s3.HeadObjectOutput{}, nil
	}
	return nil, &types.NotFound{}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func TestPublisher_UploadsThenSkips(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "kubectl", "k")
	a, err := Zip(filepath.Join(dir, "layer.zip"), []File{{Name: "kubectl/kubectl", Source: src, Mode: 0755}})
	require.NoError(t, err)

	client := &fakeS3{objects: map[string][]byte{}}
	pub := NewPublisher(client, "media-assets", "layers")

	loc, err := pub.Publish(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "media-assets", loc.Bucket)
	assert.Equal(t, "layers/"+a.Hash+".zip", loc.Key)
	assert.False(t, loc.Skipped)
	assert.Equal(t, 1, client.puts)

	raw, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, raw, client.objects["media-assets/"+loc.Key])

	again, err := pub.Publish(context.Background(), a)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Equal(t, 1, client.puts)
}

func TestPublisher_Errors(t *testing.T) {
	a := Asset{Path: "unused.zip", Hash: "abc"}

	_, err := NewPublisher(&fakeS3{}, "", "").Publish(context.Background(), a)
	assert.EqualError(t, err, "asset bucket is not set")

	client := &fakeS3{headErr: errors.New("access denied")}
	_, err = NewPublisher(client, "b", "").Publish(context.Background(), a)
	assert.EqualError(t, err, "checking s3://b/abc.zip: access denied")
}
