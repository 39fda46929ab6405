/*
Package ast defines the abstract syntax tree of calculator programs.

A program is an ordered list of statements. Statements and expressions are
closed sets of node types; clients switch over them with type switches.
Nodes are not modified after construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
