/*
Package number converts numbers to display strings, honoring short
Python-style format specs and, optionally, the decimal and grouping
conventions of a locale.

A Formatter is bound to its locale at construction time. The locale is
explicit state of the formatter, not a process-global setting, so
concurrent formatting calls with different locales cannot interfere with
each other.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

For details please refer to the LICENSE file in the repository root.
*/
package number
