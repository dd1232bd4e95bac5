// Package kubectllayer packages kubectl and helm as an AWS Lambda layer.
//
// Lambda extracts layer archives under /opt, so the archive stores the
// binaries at kubectl/kubectl and helm/helm:
//
//	a, _ := kubectllayer.Bundle(kubectllayer.BundleOptions{
//	    Kubectl: "bin/kubectl",
//	    Helm:    "bin/helm",
//	    Output:  "dist/kubectl-layer.zip",
//	})
//	loc, _ := publisher.Publish(ctx, a)
//	stk.Add("KubectlLayer", kubectllayer.New(loc, kubectllayer.Props{}))
package kubectllayer

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/lex00/wetwire-l1-go/internal/asset"
	"github.com/lex00/wetwire-l1-go/resources/lambda"
)

const (
	// KubectlEntry and HelmEntry are the archive paths of the binaries.
	KubectlEntry = "kubectl/kubectl"
	HelmEntry    = "helm/helm"

	// Description is the layer description.
	Description = "/opt/kubectl/kubectl and /opt/helm/helm"
	// License is the layer license.
	License = "Apache-2.0"
)

// BundleOptions locates the binaries and the output archive.
type BundleOptions struct {
	Kubectl string
	Helm    string
	Output  string
}

// Bundle builds the layer archive from local kubectl and helm binaries.
func Bundle(opts BundleOptions) (asset.Asset, error) {
	var err error
	if opts.Kubectl == "" {
		err = multierr.Append(err, fmt.Errorf("kubectl binary path is required"))
	}
	if opts.Helm == "" {
		err = multierr.Append(err, fmt.Errorf("helm binary path is required"))
	}
	if opts.Output == "" {
		err = multierr.Append(err, fmt.Errorf("output path is required"))
	}
	if err != nil {
		return asset.Asset{}, err
	}

	return asset.Zip(opts.Output, []asset.File{
		{Name: KubectlEntry, Source: opts.Kubectl, Mode: 0755},
		{Name: HelmEntry, Source: opts.Helm, Mode: 0755},
	})
}

// Inspect checks that the archive at path holds both binaries as executable
// files. It returns the archive entries along with any layout problems.
func Inspect(path string) ([]asset.Entry, error) {
	entries, err := asset.List(path)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]asset.Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	var problems error
	for _, name := range []string{KubectlEntry, HelmEntry} {
		e, ok := byName[name]
		switch {
		case !ok:
			problems = multierr.Append(problems, fmt.Errorf("%s: missing from layer", name))
		case e.Mode.Perm()&0111 == 0:
			problems = multierr.Append(problems, fmt.Errorf("%s: not executable (mode %s)", name, e.Mode.Perm()))
		}
	}
	return entries, problems
}

// Props are optional LayerVersion settings.
type Props struct {
	LayerName               any
	CompatibleRuntimes      []any
	CompatibleArchitectures []any
	// Description and License override the defaults when set.
	Description any
	License     any
}

// New returns the LayerVersion resource for an archive published at loc.
func New(loc asset.Location, props Props) *lambda.LayerVersion {
	var description any = Description
	if props.Description != nil {
		description = props.Description
	}
	var license any = License
	if props.License != nil {
		license = props.License
	}

	return &lambda.LayerVersion{
		Content: lambda.LayerVersion_Content{
			S3Bucket: loc.Bucket,
			S3Key:    loc.Key,
		},
		Description:             description,
		LicenseInfo:             license,
		LayerName:               props.LayerName,
		CompatibleRuntimes:      props.CompatibleRuntimes,
		CompatibleArchitectures: props.CompatibleArchitectures,
	}
}
