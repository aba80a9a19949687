// Package segmenter runs the pretrained prefix/stem splitting model.
// The model is a black box to the rest of the system: it reads a
// padded character-index sequence and emits one split score per
// character position. Everything grammatical happens downstream in
// package shonamorph.
package segmenter

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/shona-nlp/shonamorph"
)

// Config locates the exported model assets.
type Config struct {
	// ModelPath is the ONNX export of the splitting model.
	ModelPath string
	// VocabPath is the character-index JSON (see Vocab).
	VocabPath string
	// OrtLibrary is the onnxruntime shared library path. Empty uses
	// the platform default search path.
	OrtLibrary string
	// MaxLen is the padded sequence length the model was trained
	// with. Defaults to 30.
	MaxLen int
	// InputName and OutputName are the graph tensor names. Default
	// "input" and "output".
	InputName  string
	OutputName string
	// Threshold is the split-score cutoff. Defaults to 0.5.
	Threshold float32
	// OOVIndex is the vocabulary index for unknown characters.
	// Defaults to 1.
	OOVIndex int64
}

func (c *Config) applyDefaults() {
	if c.MaxLen <= 0 {
		c.MaxLen = 30
	}
	if c.InputName == "" {
		c.InputName = "input"
	}
	if c.OutputName == "" {
		c.OutputName = "output"
	}
	if c.Threshold <= 0 {
		c.Threshold = 0.5
	}
	if c.OOVIndex <= 0 {
		c.OOVIndex = 1
	}
}

// ortInit guards the process-wide onnxruntime environment.
var ortInit struct {
	once sync.Once
	err  error
}

func initRuntime(libraryPath string) error {
	ortInit.once.Do(func() {
		if libraryPath != "" {
			ort.SetSharedLibraryPath(libraryPath)
		}
		ortInit.err = ort.InitializeEnvironment()
	})
	return ortInit.err
}

// Splitter segments words with the ONNX model. It implements
// shonamorph.Segmenter. Runs are serialized: the session holds no
// per-call state worth sharing and one word per call keeps latency
// flat.
type Splitter struct {
	cfg     Config
	vocab   *Vocab
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
}

// New loads the vocabulary, initializes the runtime once per process
// and opens an inference session.
func New(cfg Config) (*Splitter, error) {
	cfg.applyDefaults()
	if cfg.ModelPath == "" || cfg.VocabPath == "" {
		return nil, fmt.Errorf("segmenter: model and vocab paths are required")
	}

	vocab, err := LoadVocab(cfg.VocabPath, cfg.OOVIndex)
	if err != nil {
		return nil, err
	}
	if err := initRuntime(cfg.OrtLibrary); err != nil {
		return nil, fmt.Errorf("initialize onnxruntime: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", cfg.ModelPath, err)
	}

	return &Splitter{cfg: cfg, vocab: vocab, session: session}, nil
}

// Segment runs one inference call and reconstructs the split.
func (s *Splitter) Segment(ctx context.Context, word string) (shonamorph.Segmentation, error) {
	if err := ctx.Err(); err != nil {
		return shonamorph.Segmentation{}, err
	}
	if word == "" {
		return shonamorph.Segmentation{}, fmt.Errorf("segmenter: empty word")
	}

	input, err := ort.NewTensor(ort.NewShape(1, int64(s.cfg.MaxLen)), s.vocab.Encode(word, s.cfg.MaxLen))
	if err != nil {
		return shonamorph.Segmentation{}, fmt.Errorf("build input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(s.cfg.MaxLen), 1))
	if err != nil {
		return shonamorph.Segmentation{}, fmt.Errorf("build output tensor: %w", err)
	}
	defer output.Destroy()

	s.mu.Lock()
	err = s.session.Run([]ort.Value{input}, []ort.Value{output})
	s.mu.Unlock()
	if err != nil {
		return shonamorph.Segmentation{}, fmt.Errorf("run model on %q: %w", word, err)
	}

	return SplitFromScores(word, output.GetData(), s.cfg.Threshold), nil
}

// Close releases the inference session.
func (s *Splitter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		err := s.session.Destroy()
		s.session = nil
		return err
	}
	return nil
}
