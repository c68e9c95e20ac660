package runtime

import "github.com/sirupsen/logrus"

// log is the structured logger the backends and Intersect emit
// diagnostic fields through. Defaults to logrus's standard logger so a
// program that never touches logging still gets sensible output; callers
// that want JSON output or a different level call SetLogger.
var log = logrus.StandardLogger()

// SetLogger replaces the package-level logger. Passing nil restores the
// logrus standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		log = logrus.StandardLogger()
		return
	}
	log = l
}
