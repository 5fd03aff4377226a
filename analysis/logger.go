package analysis

import "github.com/sirupsen/logrus"

// logger is the package-level sink every analysis decision logs a
// debug line to. Defaults to logrus's standard logger, the same way
// the teacher's session types default to one before a caller swaps in
// its own via SetLogger.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the logger analysis decisions are logged to.
// Tests and embedders can pass in a *logrus.Entry scoped with their
// own fields.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}
