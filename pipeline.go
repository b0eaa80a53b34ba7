package skribbl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/skribbl/picture"
)

var imageExtensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

func (b *Bot) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !imageExtensions[strings.ToLower(filepath.Ext(file))] {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (b *Bot) loadFile(file string) (Source, error) {
	f, err := os.Open(file)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	return Load(f)
}

func (b *Bot) convertWorker(ctx context.Context, in <-chan string, o picture.Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			src, err := b.loadFile(file)
			if err != nil {
				// Not every file with the right extension decodes
				b.logger.WithField("file", file).WithError(err).Warn("skipping image")
				continue
			}

			if _, err := b.Convert(src, o); err != nil {
				errc <- err
				return
			}
			b.logger.WithField("file", file).Info("cached")

			if ctx.Err() != nil {
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Precache converts every image under path with o and stores the results in
// the cache, using workers goroutines.
func (b *Bot) Precache(ctx context.Context, path string, o picture.Options, workers int) error {
	if b.cache == nil {
		return errNoCache
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := b.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := b.convertWorker(ctx, files, o)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
