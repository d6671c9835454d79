package service

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "service")
