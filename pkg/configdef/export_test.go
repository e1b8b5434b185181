package configdef

var HasInvertedTrackingBounds = hasInvertedTrackingBounds
