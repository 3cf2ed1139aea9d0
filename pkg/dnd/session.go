package dnd

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/rover/pkg/bookmarks"
)

// ErrCancelled is returned by a Dialogs implementation when the user
// dismisses the dialog. The drop is then abandoned without mutation.
var ErrCancelled = errors.New("dialog cancelled")

// Details is what a dialog collects from the user.
type Details struct {
	Name     string
	Emojicon string
	Path     string
}

// Dialogs collects names and icons for drops that need them.
type Dialogs interface {
	// FolderDetails asks for the folder synthesized when a bookmark is
	// dropped onto another bookmark.
	FolderDetails(ctx context.Context) (Details, error)
	// ItemDetails asks for a new bookmark pointing at path.
	ItemDetails(ctx context.Context, path string) (Details, error)
	// ModifyDetails asks to confirm a bookmark edit; path is the new target.
	ModifyDetails(ctx context.Context, current bookmarks.Node, path string) (Details, error)
}

// Saver persists the tree after a successful drop.
type Saver interface {
	Save(ctx context.Context) error
}

// Session tracks one drag gesture at a time over a tree.
type Session struct {
	tree    *bookmarks.Tree
	dialogs Dialogs
	saver   Saver
	logger  *logrus.Logger

	dragged bookmarks.Position
}

// NewSession creates a session over tree. Without dialogs every drop that
// needs details is treated as cancelled.
func NewSession(tree *bookmarks.Tree, dialogs Dialogs, saver Saver, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
	}
	if dialogs == nil {
		dialogs = noDialogs{}
	}
	return &Session{
		tree:    tree,
		dialogs: dialogs,
		saver:   saver,
		logger:  logger,
	}
}

// Start begins dragging the bookmark at pos and returns the payload to
// attach to the drag. Any previous gesture is discarded.
func (s *Session) Start(pos bookmarks.Position) (Payload, error) {
	s.dragged = nil

	n, err := s.tree.At(pos)
	if err != nil {
		return nil, err
	}
	data, err := bookmarks.MarshalNode(n)
	if err != nil {
		return nil, fmt.Errorf("encode dragged bookmark: %w", err)
	}

	s.dragged = pos.Clone()
	s.logger.WithFields(logrus.Fields{
		"position": pos.String(),
		"name":     n.Base().Name,
	}).Debug("Drag started")

	return Payload{KindBookmark: string(data)}, nil
}

// Dragged returns the position captured by Start.
func (s *Session) Dragged() (bookmarks.Position, bool) {
	return s.dragged, s.dragged != nil
}

// End finishes a gesture that was not dropped on a valid target.
func (s *Session) End() {
	if s.dragged != nil {
		s.logger.WithField("position", s.dragged.String()).Debug("Drag cancelled")
	}
	s.dragged = nil
}

type noDialogs struct{}

func (noDialogs) FolderDetails(context.Context) (Details, error) {
	return Details{}, ErrCancelled
}

func (noDialogs) ItemDetails(context.Context, string) (Details, error) {
	return Details{}, ErrCancelled
}

func (noDialogs) ModifyDetails(context.Context, bookmarks.Node, string) (Details, error) {
	return Details{}, ErrCancelled
}

// take consumes the captured position for a bookmark drop.
func (s *Session) take(target string) (bookmarks.Position, error) {
	source := s.dragged
	s.dragged = nil
	if source == nil {
		return nil, s.missing(target, nil)
	}
	return source, nil
}

func (s *Session) missing(target string, p Payload) error {
	s.logger.WithFields(logrus.Fields{
		"target": target,
		"types":  p.Types(),
	}).Error("Drop ignored: no usable transfer data")
	return fmt.Errorf("drop on %s: %w", target, ErrMissingTransferData)
}

func (s *Session) cancelled(target string, err error) error {
	if errors.Is(err, ErrCancelled) {
		s.logger.WithField("target", target).Debug("Drop abandoned by user")
		return nil
	}
	return err
}

func (s *Session) save(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Save(ctx)
}

// DropOnSpace handles a drop on the gap at pos between bookmarks. A dragged
// bookmark moves there; a dropped file becomes a new bookmark there.
func (s *Session) DropOnSpace(ctx context.Context, pos bookmarks.Position, p Payload) error {
	switch {
	case p.Has(KindBookmark):
		source, err := s.take("space")
		if err != nil {
			return err
		}
		if err := s.tree.Move(pos, source); err != nil {
			return err
		}
		s.logger.WithFields(logrus.Fields{
			"from": source.String(),
			"to":   pos.String(),
		}).Info("Bookmark moved")
		return s.save(ctx)

	case p.Has(KindFile):
		path := p.Get(KindFile)
		d, err := s.dialogs.ItemDetails(ctx, path)
		if err != nil {
			return s.cancelled("space", err)
		}
		if d.Path == "" {
			d.Path = path
		}
		if _, err := s.tree.CreateItem(pos, d.Name, d.Emojicon, d.Path); err != nil {
			return err
		}
		s.logger.WithFields(logrus.Fields{
			"path":     d.Path,
			"position": pos.String(),
		}).Info("Bookmark created")
		return s.save(ctx)
	}
	return s.missing("space", p)
}

// DropOnItem handles a drop on the bookmark at pos. A dragged bookmark is
// wrapped together with it in a new folder; a dropped file replaces the
// bookmark's path.
func (s *Session) DropOnItem(ctx context.Context, pos bookmarks.Position, p Payload) error {
	switch {
	case p.Has(KindBookmark):
		source, err := s.take("item")
		if err != nil {
			return err
		}
		d, err := s.dialogs.FolderDetails(ctx)
		if err != nil {
			return s.cancelled("item", err)
		}
		folder, at, err := s.tree.CreateFolder(d.Name, d.Emojicon, pos, source)
		if err != nil {
			return err
		}
		s.logger.WithFields(logrus.Fields{
			"folder":   folder.Name,
			"position": at.String(),
		}).Info("Folder created")
		return s.save(ctx)

	case p.Has(KindFile):
		n, err := s.tree.At(pos)
		if err != nil {
			return err
		}
		path := p.Get(KindFile)
		d, err := s.dialogs.ModifyDetails(ctx, n, path)
		if err != nil {
			return s.cancelled("item", err)
		}
		if d.Path == "" {
			d.Path = path
		}
		if err := s.tree.Modify(pos, d.Name, d.Emojicon, &d.Path); err != nil {
			return err
		}
		s.logger.WithFields(logrus.Fields{
			"path":     d.Path,
			"position": pos.String(),
		}).Info("Bookmark retargeted")
		return s.save(ctx)
	}
	return s.missing("item", p)
}

// DropOnFolder handles a drop on the folder header at pos: the dragged
// bookmark becomes the folder's first child.
func (s *Session) DropOnFolder(ctx context.Context, pos bookmarks.Position, p Payload) error {
	if !p.Has(KindBookmark) {
		return s.missing("folder", p)
	}
	source, err := s.take("folder")
	if err != nil {
		return err
	}
	if err := s.tree.Nest(pos, source); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"from":   source.String(),
		"folder": pos.String(),
	}).Info("Bookmark nested")
	return s.save(ctx)
}

// DropOnContainer handles a drop on the container's drop field. A dragged
// bookmark is deleted; a dropped file is bookmarked at the end of the root.
func (s *Session) DropOnContainer(ctx context.Context, p Payload) error {
	switch {
	case p.Has(KindBookmark):
		source, err := s.take("container")
		if err != nil {
			return err
		}
		removed, err := s.tree.Remove(source)
		if err != nil {
			return err
		}
		s.logger.WithField("name", removed.Base().Name).Info("Bookmark deleted")
		return s.save(ctx)

	case p.Has(KindFile):
		path := p.Get(KindFile)
		d, err := s.dialogs.ItemDetails(ctx, path)
		if err != nil {
			return s.cancelled("container", err)
		}
		if d.Path == "" {
			d.Path = path
		}
		if _, err := s.tree.AppendItem(d.Name, d.Emojicon, d.Path); err != nil {
			return err
		}
		s.logger.WithField("path", d.Path).Info("Bookmark created")
		return s.save(ctx)
	}
	return s.missing("container", p)
}
