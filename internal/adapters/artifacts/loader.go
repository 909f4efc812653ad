package artifacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/domain/models"
)

var errFound = errors.New("found")

// Loader locates and parses compilation artifacts produced by Hardhat or Foundry
type Loader struct {
	projectRoot  string
	artifactsDir string
	outDir       string
	log          *slog.Logger
}

// NewLoader creates a loader for the configured project
func NewLoader(cfg *config.RuntimeConfig, log *slog.Logger) *Loader {
	outDir := "out"
	if cfg.FoundryConfig != nil {
		if profile, ok := cfg.FoundryConfig.Profile["default"]; ok && profile.OutPath != "" {
			outDir = profile.OutPath
		}
	}
	return &Loader{
		projectRoot:  cfg.ProjectRoot,
		artifactsDir: cfg.ArtifactsDir,
		outDir:       filepath.Join(cfg.ProjectRoot, outDir),
		log:          log.With("component", "ArtifactLoader"),
	}
}

// LoadContract finds the artifact for name and decodes it. An explicit
// artifacts directory is searched alone; otherwise Hardhat's
// artifacts/contracts is searched before Foundry's out directory.
func (l *Loader) LoadContract(ctx context.Context, name string) (*models.Contract, error) {
	var roots []string
	if l.artifactsDir != "" {
		roots = []string{l.artifactsDir}
	} else {
		roots = []string{
			filepath.Join(l.projectRoot, "artifacts", "contracts"),
			l.outDir,
		}
	}

	for _, root := range roots {
		path, err := findArtifact(root, name)
		if err != nil {
			return nil, err
		}
		if path == "" {
			continue
		}
		l.log.Debug("found artifact", "contract", name, "path", path)
		return l.readContract(name, path)
	}

	return nil, fmt.Errorf("%w: no artifact for %s (searched %s)", domain.ErrContractNotFound, name, strings.Join(roots, ", "))
}

func (l *Loader) readContract(name, path string) (*models.Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(artifact.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}
	if _, err := abi.JSON(strings.NewReader(string(artifact.ABI))); err != nil {
		return nil, fmt.Errorf("artifact %s has an invalid abi: %w", path, err)
	}
	if _, err := artifact.Bytecode.Bytes(); err != nil {
		return nil, fmt.Errorf("%s is not deployable: %w", name, err)
	}
	if artifact.ContractName == "" {
		artifact.ContractName = name
	}

	contract := &models.Contract{
		Name:         name,
		Path:         artifact.Source(),
		ArtifactPath: path,
		Artifact:     &artifact,
	}
	if rel, err := filepath.Rel(l.projectRoot, path); err == nil {
		contract.ArtifactPath = rel
	}
	return contract, nil
}

// findArtifact walks root for <name>.json, preferring the <name>.sol/<name>.json
// layout both toolchains use. Returns "" when root is missing or has no match.
func findArtifact(root, name string) (string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return "", nil
	}

	fileName := name + ".json"
	var fallback, found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != fileName {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == name+".sol" {
			found = path
			return errFound
		}
		if fallback == "" {
			fallback = path
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFound) {
		return "", fmt.Errorf("failed to search artifacts in %s: %w", root, err)
	}
	if found != "" {
		return found, nil
	}
	return fallback, nil
}
