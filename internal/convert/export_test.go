package convert

var FrameError = frameError
