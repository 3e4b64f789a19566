package tui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/picker"
	"github.com/MKhiriev/go-media-kit/models"
	tea "github.com/charmbracelet/bubbletea"
)

// fileFilter decides whether a regular file is pickable. Directories are
// always shown so the user can navigate into them.
type fileFilter func(path string) bool

// interactiveGallery is a terminal file-browser implementation of
// [picker.Gallery]: the user walks the media directory and marks image
// files. Esc dismisses the browser and resolves as cancellation.
type interactiveGallery struct {
	rootDir string
	logger  *logger.Logger
}

// NewInteractiveGallery constructs a [picker.Gallery] backed by the terminal
// file browser rooted at mediaDir.
func NewInteractiveGallery(mediaDir string, logger *logger.Logger) picker.Gallery {
	return &interactiveGallery{rootDir: mediaDir, logger: logger}
}

func (g *interactiveGallery) Pick(ctx context.Context, opts models.LibraryOptions) ([]models.Asset, error) {
	paths, err := runFileBrowser(ctx, browserConfig{
		title:  "ВЫБОР ИЗОБРАЖЕНИЙ",
		root:   g.rootDir,
		multi:  true,
		limit:  opts.SelectionLimit,
		filter: mediaTypeFilter(opts.MediaType),
	})
	if err != nil {
		return nil, err
	}

	assets := make([]models.Asset, 0, len(paths))
	for _, path := range paths {
		asset, err := picker.AssetFromPath(path, models.SourceLibrary)
		if err != nil {
			g.logger.Err(err).Str("func", "*interactiveGallery.Pick").Str("path", path).Msg("выбранный файл не читается")
			return nil, picker.NewError(picker.CodePermission, err.Error())
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

// interactiveDocuments is a terminal file-browser implementation of
// [picker.Documents].
type interactiveDocuments struct {
	rootDir string
	logger  *logger.Logger
}

// NewInteractiveDocuments constructs a [picker.Documents] backed by the
// terminal file browser rooted at rootDir.
func NewInteractiveDocuments(rootDir string, logger *logger.Logger) picker.Documents {
	return &interactiveDocuments{rootDir: rootDir, logger: logger}
}

func (d *interactiveDocuments) Pick(ctx context.Context, opts models.DocumentOptions) (models.Asset, error) {
	assets, err := d.pick(ctx, opts, false)
	if err != nil {
		return models.Asset{}, err
	}
	return assets[0], nil
}

func (d *interactiveDocuments) PickMultiple(ctx context.Context, opts models.DocumentOptions) ([]models.Asset, error) {
	return d.pick(ctx, opts, true)
}

func (d *interactiveDocuments) pick(ctx context.Context, opts models.DocumentOptions, multi bool) ([]models.Asset, error) {
	paths, err := runFileBrowser(ctx, browserConfig{
		title:  "ВЫБОР ДОКУМЕНТОВ",
		root:   d.rootDir,
		multi:  multi,
		filter: allowedTypesFilter(opts.AllowedTypes),
	})
	if err != nil {
		return nil, err
	}

	assets := make([]models.Asset, 0, len(paths))
	for _, path := range paths {
		asset, err := picker.AssetFromPath(path, models.SourceDocuments)
		if err != nil {
			d.logger.Err(err).Str("func", "*interactiveDocuments.pick").Str("path", path).Msg("выбранный файл не читается")
			return nil, picker.NewError(picker.CodePermission, err.Error())
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

// mediaTypeFilter matches files whose extension-derived MIME type belongs to
// the requested media kind. The final asset is still content-sniffed; this
// filter only controls what the browser lists.
func mediaTypeFilter(kind models.MediaType) fileFilter {
	return func(path string) bool {
		mimeType := mime.TypeByExtension(filepath.Ext(path))
		switch kind {
		case models.MediaTypeVideo:
			return strings.HasPrefix(mimeType, "video/")
		case models.MediaTypeMixed:
			return strings.HasPrefix(mimeType, "image/") || strings.HasPrefix(mimeType, "video/")
		default:
			return strings.HasPrefix(mimeType, "image/")
		}
	}
}

// allowedTypesFilter matches files against the document picker's allowed
// list: exact ("application/pdf") or prefix family ("image/"). Empty list
// allows everything.
func allowedTypesFilter(allowed []string) fileFilter {
	return func(path string) bool {
		if len(allowed) == 0 {
			return true
		}

		mimeType := mime.TypeByExtension(filepath.Ext(path))
		for _, candidate := range allowed {
			if mimeType == candidate || (strings.HasSuffix(candidate, "/") && strings.HasPrefix(mimeType, candidate)) {
				return true
			}
		}
		return false
	}
}

type browserConfig struct {
	title  string
	root   string
	multi  bool
	limit  int
	filter fileFilter
}

// runFileBrowser owns the terminal for the duration of one pick. It resolves
// with the chosen paths, [picker.ErrCancelled] on Esc, or a typed
// [*picker.Error] when the browser itself fails.
func runFileBrowser(ctx context.Context, cfg browserConfig) ([]string, error) {
	model, err := newBrowserModel(cfg)
	if err != nil {
		return nil, picker.NewError(picker.CodePermission, err.Error())
	}

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, picker.NewError(picker.CodeOthers, err.Error())
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return nil, picker.NewError(picker.CodeOthers, tea.ErrProgramKilled.Error())
	}
	if result.cancelled || len(result.picked) == 0 {
		return nil, picker.ErrCancelled
	}

	return result.picked, nil
}

// browserEntry is one row of the listing: a subdirectory or a pickable file.
type browserEntry struct {
	name  string
	path  string
	isDir bool
}

type browserModel struct {
	cfg     browserConfig
	cwd     string
	entries []browserEntry
	idx     int
	status  string

	selected map[string]bool

	picked    []string
	cancelled bool
}

func newBrowserModel(cfg browserConfig) (browserModel, error) {
	root, err := filepath.Abs(cfg.root)
	if err != nil {
		return browserModel{}, fmt.Errorf("resolve browser root %q: %w", cfg.root, err)
	}
	cfg.root = root

	m := browserModel{
		cfg:      cfg,
		cwd:      root,
		selected: make(map[string]bool),
	}
	if err := m.readDir(); err != nil {
		return browserModel{}, err
	}

	return m, nil
}

func (m *browserModel) readDir() error {
	dirEntries, err := os.ReadDir(m.cwd)
	if err != nil {
		return fmt.Errorf("read directory %q: %w", m.cwd, err)
	}

	entries := make([]browserEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(m.cwd, entry.Name())
		if entry.IsDir() {
			entries = append(entries, browserEntry{name: entry.Name(), path: path, isDir: true})
			continue
		}
		if entry.Type().IsRegular() && (m.cfg.filter == nil || m.cfg.filter(path)) {
			entries = append(entries, browserEntry{name: entry.Name(), path: path})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})

	m.entries = entries
	m.idx = 0
	return nil
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case "left", "backspace":
		return m.ascend()
	case " ":
		if m.cfg.multi {
			m.toggleCurrent()
		}
	case "enter":
		entry, ok := m.current()
		if !ok {
			return m, nil
		}
		if entry.isDir {
			return m.descend(entry.path)
		}
		if !m.cfg.multi {
			m.picked = []string{entry.path}
			return m, tea.Quit
		}
		m.toggleCurrent()
	case "y":
		if !m.cfg.multi {
			return m, nil
		}
		m.picked = m.selectedPaths()
		return m, tea.Quit
	}

	return m, nil
}

func (m browserModel) ascend() (tea.Model, tea.Cmd) {
	if m.cwd == m.cfg.root {
		return m, nil
	}

	m.cwd = filepath.Dir(m.cwd)
	if err := m.readDir(); err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m browserModel) descend(path string) (tea.Model, tea.Cmd) {
	previous := m.cwd
	m.cwd = path
	if err := m.readDir(); err != nil {
		m.cwd = previous
		m.status = err.Error()
	}
	return m, nil
}

func (m *browserModel) toggleCurrent() {
	entry, ok := m.current()
	if !ok || entry.isDir {
		return
	}

	if m.selected[entry.path] {
		delete(m.selected, entry.path)
		m.status = ""
		return
	}

	if m.cfg.limit > 0 && len(m.selected) >= m.cfg.limit {
		m.status = fmt.Sprintf("Можно выбрать не более %d файл(ов)", m.cfg.limit)
		return
	}

	m.selected[entry.path] = true
	m.status = ""
}

func (m browserModel) current() (browserEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return browserEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m browserModel) selectedPaths() []string {
	paths := make([]string, 0, len(m.selected))
	for path := range m.selected {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (m browserModel) View() string {
	out := ""

	relative, err := filepath.Rel(m.cfg.root, m.cwd)
	if err != nil || relative == "." {
		relative = "/"
	}
	out += "Папка: " + relative + "\n\n"

	if m.status != "" {
		out += "Ошибка: " + m.status + "\n\n"
	}

	if len(m.entries) == 0 {
		out += "Папка пуста\n"
	}

	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		mark := " "
		if m.selected[entry.path] {
			mark = "*"
		}

		name := entry.name
		if entry.isDir {
			name += "/"
		}

		out += fmt.Sprintf("%s %s %s\n", cursor, mark, fitText(name, 50))
	}

	if m.cfg.multi {
		out += fmt.Sprintf("\nВыбрано: %d\n", len(m.selected))
	}

	hotKeys := "enter: открыть/выбрать │ ←: наверх │ esc: отмена"
	if m.cfg.multi {
		hotKeys = "space: отметить │ enter: открыть │ y: готово │ ←: наверх │ esc: отмена"
	}

	return renderPage(m.cfg.title, strings.TrimRight(out, "\n"), hotKeys)
}
