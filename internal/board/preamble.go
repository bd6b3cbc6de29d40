// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

// Preamble is the fixed document setup emitted before a wrapped table:
// Latin Modern sans fonts, table/color/graphics packages, A4 geometry,
// suppressed page style, and the header and row band color palette.
const Preamble = `\documentclass[a4paper,20pt]{article}

% Font setup - robust across platforms
\usepackage{lmodern}
\usepackage[T1]{fontenc}
\usepackage[utf8]{inputenc}

% Use a font that's available on most systems
\renewcommand{\rmdefault}{lmss}
\renewcommand{\sfdefault}{lmss}
\renewcommand{\ttdefault}{lmtt}

% Core packages
\usepackage[table]{xcolor}
\usepackage{booktabs}
\usepackage{array}
\usepackage{graphicx}
\usepackage{tabularx}
\usepackage{multirow}
\usepackage{colortbl}

% Geometry with consistent margins
\usepackage[a4paper, margin=2.54cm]{geometry}

% Keep normal spacing - row heights are controlled individually
\renewcommand{\arraystretch}{1.0}
\setlength{\tabcolsep}{6pt}

% Remove page numbers and headers
\pagestyle{empty}

% Ensure consistent image handling
\graphicspath{{./}}
\DeclareGraphicsExtensions{.png,.jpg,.jpeg,.pdf}

% Color definitions for consistency
\definecolor{headerYellow}{RGB}{255,255,204}
\definecolor{headerGreen}{RGB}{204,255,204}
\definecolor{headerBlue}{RGB}{204,204,255}
\definecolor{headerRed}{RGB}{255,204,204}
\definecolor{headerOrange}{RGB}{255,229,204}
\definecolor{headerWhite}{RGB}{248,248,248}
\definecolor{headerPink}{RGB}{255,204,255}

\definecolor{rowCyan}{RGB}{230,248,255}
\definecolor{rowYellow}{RGB}{255,255,230}
\definecolor{rowGreen}{RGB}{240,255,240}
\definecolor{rowRed}{RGB}{255,240,240}

\begin{document}
\sffamily`

// Postamble closes a wrapped document.
const Postamble = `\end{document}`
