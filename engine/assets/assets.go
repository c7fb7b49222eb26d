package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/kestrel/engine/assets/loaders"
	"github.com/spaghettifunk/kestrel/engine/core"
)

const changeBufferSize = 64

var ErrClosed = errors.New("asset manager already closed")

type AssetInfo struct {
	Path       string
	Type       loaders.ResourceType
	ModTime    time.Time
	LastLoaded time.Time
}

// AssetManager indexes the files below a root directory and watches them for
// changes. The watcher runs on its own goroutine; changed paths are handed to
// the caller through Poll so reloading happens on the thread that owns the
// graphics context.
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[loaders.ResourceType]Loader

	mutex sync.RWMutex

	fsnotify *fsnotify.Watcher
	changes  chan string
	done     chan struct{}
	wg       sync.WaitGroup
	started  bool
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[loaders.ResourceType]Loader),
		fsnotify: fsWatch,
		changes:  make(chan string, changeBufferSize),
		done:     make(chan struct{}),
	}
	am.RegisterLoader(loaders.ResourceTypeShader, &loaders.ShaderLoader{})
	am.RegisterLoader(loaders.ResourceTypeImage, &loaders.TextureLoader{FlipVertically: true})
	am.RegisterLoader(loaders.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})
	am.RegisterLoader(loaders.ResourceTypeSystemFont, &loaders.SystemFontLoader{})
	return am, nil
}

// Initialize indexes assetsDir recursively and starts watching it.
func (am *AssetManager) Initialize(assetsDir string) error {
	if am.isClosed {
		return ErrClosed
	}
	am.root = filepath.Clean(assetsDir)
	if err := am.watchRecursive(am.root); err != nil {
		return err
	}
	if !am.started {
		am.started = true
		am.wg.Add(1)
		go am.start()
	}
	core.LogInfo("watching assets in %s (%d indexed)", am.root, am.Len())
	return nil
}

func (am *AssetManager) Root() string {
	return am.root
}

// RegisterLoader replaces the loader used for assetType.
func (am *AssetManager) RegisterLoader(assetType loaders.ResourceType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// Load reads an asset from disk using the loader registered for its
// extension. The file does not need to be inside the watched root.
func (am *AssetManager) Load(path string) (*loaders.Resource, error) {
	path = filepath.Clean(path)
	assetType := DetermineAssetType(path)
	if assetType == loaders.ResourceTypeNone {
		return nil, fmt.Errorf("unknown asset type for %s: %w", path, core.ErrNotFound)
	}

	am.mutex.RLock()
	loader, exists := am.loaders[assetType]
	am.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no loader registered for asset type %s: %w", assetType, core.ErrNotFound)
	}

	res, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	info := am.assets[path]
	info.Path = path
	info.Type = assetType
	info.LastLoaded = time.Now()
	am.assets[path] = info
	am.mutex.Unlock()

	return res, nil
}

func (am *AssetManager) Unload(res *loaders.Resource) error {
	if res == nil {
		return nil
	}
	am.mutex.RLock()
	loader, exists := am.loaders[res.Type]
	am.mutex.RUnlock()
	if !exists {
		return fmt.Errorf("no loader registered for asset type %s: %w", res.Type, core.ErrNotFound)
	}
	return loader.Unload(res)
}

func (am *AssetManager) Lookup(path string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[filepath.Clean(path)]
	return info, ok
}

// List returns the indexed assets of the given type sorted by path.
// ResourceTypeNone lists everything.
func (am *AssetManager) List(assetType loaders.ResourceType) []AssetInfo {
	am.mutex.RLock()
	out := make([]AssetInfo, 0, len(am.assets))
	for _, info := range am.assets {
		if assetType == loaders.ResourceTypeNone || info.Type == assetType {
			out = append(out, info)
		}
	}
	am.mutex.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (am *AssetManager) Len() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

// Poll drains the paths modified since the last call. Each path appears once.
func (am *AssetManager) Poll() []string {
	var out []string
	seen := make(map[string]bool)
	for {
		select {
		case p := <-am.changes:
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		default:
			return out
		}
	}
}

func (am *AssetManager) Close() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	am.wg.Wait()
	return am.fsnotify.Close()
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleEvent(e)

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) handleEvent(e fsnotify.Event) {
	name := filepath.Clean(e.Name)
	if e.Has(fsnotify.Create) {
		if s, err := os.Stat(name); err == nil && s.IsDir() {
			if err := am.watchRecursive(name); err != nil {
				core.LogWarn("failed to watch %s: %s", name, err)
			}
			return
		}
	}
	if e.Has(fsnotify.Create) || e.Has(fsnotify.Write) {
		if am.index(name) {
			am.notify(name)
		}
	}
	// a removed path may have been a directory, fsnotify drops its watch itself
	if e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
		am.removeAsset(name)
	}
}

func (am *AssetManager) notify(path string) {
	select {
	case am.changes <- path:
	default:
		core.LogWarn("asset change queue full, dropping %s", path)
	}
}

// watchRecursive adds path and every directory below it to the watch list
// and indexes the files it finds.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if strings.HasPrefix(fi.Name(), ".") && walkPath != path {
				return filepath.SkipDir
			}
			return am.fsnotify.Add(walkPath)
		}
		am.index(filepath.Clean(walkPath))
		return nil
	})
}

// index records path when its extension is known and reports whether it did.
func (am *AssetManager) index(path string) bool {
	assetType := DetermineAssetType(path)
	if assetType == loaders.ResourceTypeNone {
		return false
	}
	var modTime time.Time
	if s, err := os.Stat(path); err == nil {
		modTime = s.ModTime()
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	info := am.assets[path]
	info.Path = path
	info.Type = assetType
	info.ModTime = modTime
	am.assets[path] = info
	return true
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	delete(am.assets, path)
}

func DetermineAssetType(path string) loaders.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp":
		return loaders.ResourceTypeImage
	case ".vert", ".frag", ".glsl":
		return loaders.ResourceTypeShader
	case ".fnt":
		return loaders.ResourceTypeBitmapFont
	case ".ttf", ".otf":
		return loaders.ResourceTypeSystemFont
	default:
		return loaders.ResourceTypeNone
	}
}
