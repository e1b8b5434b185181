package videobackend

import "gocv.io/x/gocv"

func OverloadOpenVideoCapture(overload func(string) (*gocv.VideoCapture, error)) func() {
	openVideoCaptureRef := openVideoCapture
	openVideoCapture = overload
	return func() { openVideoCapture = openVideoCaptureRef }
}

func OverloadReadFromVideoConnection(overload func(*gocv.VideoCapture, *gocv.Mat) bool) func() {
	readFromVideoConnectionRef := readFromVideoConnection
	readFromVideoConnection = overload
	return func() { readFromVideoConnection = readFromVideoConnectionRef }
}
