package broken

func Broken( {
