/*
Package fftab is a compiler for FIRST/FOLLOW tables of LL(1) grammars.

Tables are authored by hand (or produced by an external solver) as a pipe-delimited
text table, one row per non-terminal:

    | ADDOP  |          |         | plus, minus, or | plus, minus, id, intlit |
    | PROG   |          | Endable | class, func     | $                       |

fftab parses such a table, validates it against a closed terminal alphabet and emits
a pair of read-only symbol-set declarations for every non-terminal, named
NAME_FIRST and NAME_FOLLOW. Package structure is as follows:

■ symbol: Package symbol defines grammar symbols and the terminal alphabet.

■ table: Package table parses and lints the authored table.

■ emit: Package emit renders declarations as Go source or as a plain listing.

■ ll: Package ll builds an LL(1) decision table for consumers of the emitted sets.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fftab
