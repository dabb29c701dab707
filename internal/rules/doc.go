// Package rules provides scriptable split-point adjustment.
//
// Publishers carry house rules the built-in selector cannot know (never
// break inside a scene marker, keep epigraphs with their chapter head).
// A rule is a Lua script defining
//
//	function adjust_split(text, offset)
//	    return offset
//	end
//
// which receives the remaining document suffix and the selector's chosen
// byte offset, and returns the offset to use instead. The paginator
// ignores adjustments outside (0, #text], so a buggy script can degrade
// splits but never corrupt a sequence.
//
// gopher-lua states are not goroutine-safe; a rule serializes calls with
// a mutex and recovers panics into errors.
package rules
