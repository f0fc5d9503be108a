package table

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Texture is a decoded atlas image.
type Texture struct {
	Path  string
	Image image.Image
}

// Size returns the pixel dimensions of the texture.
func (t *Texture) Size() (int, int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Loader fetches and decodes one image.
type Loader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (image.Image, error)

func (f LoaderFunc) Load(ctx context.Context, path string) (image.Image, error) {
	return f(ctx, path)
}

// FileLoader decodes images from the local filesystem.
type FileLoader struct{}

func (FileLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

type AssetState int

const (
	AssetsPending AssetState = iota
	AssetsLoading
	AssetsReady
	AssetsFailed
)

func (s AssetState) String() string {
	switch s {
	case AssetsPending:
		return "pending"
	case AssetsLoading:
		return "loading"
	case AssetsReady:
		return "ready"
	case AssetsFailed:
		return "failed"
	}
	return fmt.Sprintf("AssetState(%d)", int(s))
}

// AssetBundle holds the front and back atlas textures and gates everything
// that needs them. Both images load concurrently; the bundle is ready only
// when both succeeded.
type AssetBundle struct {
	FrontPath string
	BackPath  string

	loader Loader
	once   sync.Once
	done   chan struct{}

	mu    sync.RWMutex
	state AssetState
	front *Texture
	back  *Texture
	err   error
}

func NewAssetBundle(loader Loader, frontPath, backPath string) *AssetBundle {
	if loader == nil {
		loader = FileLoader{}
	}
	return &AssetBundle{
		FrontPath: frontPath,
		BackPath:  backPath,
		loader:    loader,
		done:      make(chan struct{}),
	}
}

// Load fetches both images and blocks until the join resolves. Only the
// first call does any work; later calls wait for it and share its result.
// A ctx cancelled before both images arrive fails the bundle for good, like
// any other load error.
func (b *AssetBundle) Load(ctx context.Context) error {
	b.once.Do(func() {
		b.setState(AssetsLoading, nil)
		defer close(b.done)

		var front, back *Texture
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			front, err = b.load(gctx, b.FrontPath)
			return err
		})
		g.Go(func() (err error) {
			back, err = b.load(gctx, b.BackPath)
			return err
		})
		if err := g.Wait(); err != nil {
			b.setState(AssetsFailed, err)
			return
		}
		b.mu.Lock()
		b.front, b.back = front, back
		b.state = AssetsReady
		b.mu.Unlock()
	})
	return b.Wait(ctx)
}

// LoadAsync starts Load in the background. Observe the result through Done,
// Wait or State.
func (b *AssetBundle) LoadAsync(ctx context.Context) {
	go b.Load(ctx)
}

func (b *AssetBundle) load(ctx context.Context, path string) (*Texture, error) {
	img, err := b.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, path, err)
	}
	return &Texture{Path: path, Image: img}, nil
}

func (b *AssetBundle) setState(s AssetState, err error) {
	b.mu.Lock()
	b.state = s
	b.err = err
	b.mu.Unlock()
}

// Done is closed once loading has either succeeded or failed.
func (b *AssetBundle) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until loading resolves or ctx ends.
func (b *AssetBundle) Wait(ctx context.Context) error {
	select {
	case <-b.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.err
}

func (b *AssetBundle) State() AssetState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Err is the load failure, if any.
func (b *AssetBundle) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.err
}

// Textures returns both textures, ErrAssetsNotReady while loading, or the
// load error after a failure.
func (b *AssetBundle) Textures() (front, back *Texture, err error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	switch b.state {
	case AssetsReady:
		return b.front, b.back, nil
	case AssetsFailed:
		return nil, nil, b.err
	}
	return nil, nil, ErrAssetsNotReady
}
