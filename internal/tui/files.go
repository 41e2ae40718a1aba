package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"levelmap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a point file into the current load target.
func (m *Model) loadPath(p string, t target) {
	pts, err := geom.LoadPath(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.apply(t, pts)
	m.status = fmt.Sprintf("loaded %s into %s: %d points", filepath.Base(p), t, len(pts))
}

// apply replaces a point set and resets the views that depend on it.
func (m *Model) apply(t target, pts []geom.Point3D) {
	if t == toMeasured {
		m.sess.SetMeasured(pts)
	} else {
		m.sess.SetReference(pts)
	}
	m.dataChanged()
}

func (m *Model) dataChanged() {
	m.infoPopup = ""
	m.anim = nil
	m.centered = false
	m.centerSurface()
	m.refreshTable()
}
